package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationSetTotal(t *testing.T) {
	p := NewPagination(8)

	p.SetTotal(0)
	assert.Equal(t, 1, p.LastPage)

	p.SetTotal(8)
	assert.Equal(t, 1, p.LastPage)

	p.SetTotal(9)
	assert.Equal(t, 2, p.LastPage)

	p.SetTotal(24)
	assert.Equal(t, 3, p.LastPage)
}

func TestPaginationSetPageClamps(t *testing.T) {
	p := NewPagination(8)
	p.SetTotal(20)

	p.SetPage(2)
	assert.Equal(t, 2, p.Page)

	p.SetPage(99)
	assert.Equal(t, 3, p.Page)

	p.SetPage(-1)
	assert.Equal(t, 1, p.Page)
}

func TestPaginationBounds(t *testing.T) {
	p := NewPagination(8)
	p.SetTotal(10)

	start, end := p.Bounds()
	assert.Equal(t, 0, start)
	assert.Equal(t, 8, end)

	p.SetPage(2)
	start, end = p.Bounds()
	assert.Equal(t, 8, start)
	assert.Equal(t, 10, end)

	p.SetTotal(0)
	p.SetPage(1)
	start, end = p.Bounds()
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exactly ten", Truncate("exactly ten", 11))
	assert.Equal(t, "a long ...", Truncate("a long product name", 10))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Arduino Starter Kit", Title("arduino starter kit"))
	assert.Equal(t, "", Title(""))
}
