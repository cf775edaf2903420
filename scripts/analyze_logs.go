package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

type LogStats struct {
	TotalErrors       int
	LoginSuccess      int
	LoginFailures     int
	OrdersSubmitted   int
	OrderFailures     int
	CartReconciles    int
	FailedAPIRequests int
	PathActivity      map[string]int
	ErrorPatterns     map[string]int
}

func main() {
	// Get today's date for log file names
	today := time.Now().Format("2006-01-02")
	logDir := "./logs"

	// Initialize stats
	stats := &LogStats{
		PathActivity:  make(map[string]int),
		ErrorPatterns: make(map[string]int),
	}

	// Analyze error logs
	analyzeErrorLogs(filepath.Join(logDir, fmt.Sprintf("error-%s.log", today)), stats)

	// Analyze info logs
	analyzeInfoLogs(filepath.Join(logDir, fmt.Sprintf("info-%s.log", today)), stats)

	// Print report
	printReport(stats)
}

func analyzeErrorLogs(logFile string, stats *LogStats) {
	file, err := os.Open(logFile)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", logFile, err)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		stats.TotalErrors++

		// Count login failures
		if strings.Contains(line, "Login failed") {
			stats.LoginFailures++
		}

		// Count failed order submissions
		if strings.Contains(line, "Order submission failed") {
			stats.OrderFailures++
		}

		// Count cart mutations that fell back to a refetch
		if strings.Contains(line, "refetching to reconcile") {
			stats.CartReconciles++
		}

		// Count failed API round trips
		if strings.Contains(line, "API request failed") {
			stats.FailedAPIRequests++
			extractPathActivity(line, stats)
		}

		// Extract error patterns
		extractErrorPattern(line, stats)
	}
}

func analyzeInfoLogs(logFile string, stats *LogStats) {
	file, err := os.Open(logFile)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", logFile, err)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()

		// Count successful logins
		if strings.Contains(line, "User logged in successfully") {
			stats.LoginSuccess++
		}

		// Count submitted orders
		if strings.Contains(line, "Submitting order") {
			stats.OrdersSubmitted++
		}

		// Track which endpoints were hit
		if strings.Contains(line, "API request:") {
			extractPathActivity(line, stats)
		}
	}
}

func extractPathActivity(line string, stats *LogStats) {
	// Extract the request path from the log line
	pathRegex := regexp.MustCompile(`/api/[a-zA-Z0-9/_-]*`)
	if path := pathRegex.FindString(line); path != "" {
		stats.PathActivity[path]++
	}
}

func extractErrorPattern(line string, stats *LogStats) {
	// Extract the main error message
	parts := strings.Split(line, ":")
	if len(parts) > 1 {
		errorMsg := strings.TrimSpace(parts[1])
		stats.ErrorPatterns[errorMsg]++
	}
}

func printReport(stats *LogStats) {
	fmt.Println("\n=== Log Analysis Report ===")
	fmt.Println("Generated:", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Println("\n1. Session Statistics:")
	fmt.Printf("   Successful Logins: %d\n", stats.LoginSuccess)
	fmt.Printf("   Failed Logins: %d\n", stats.LoginFailures)

	fmt.Println("\n2. Order Statistics:")
	fmt.Printf("   Orders Submitted: %d\n", stats.OrdersSubmitted)
	fmt.Printf("   Failed Submissions: %d\n", stats.OrderFailures)
	fmt.Printf("   Cart Reconciliation Refetches: %d\n", stats.CartReconciles)

	fmt.Println("\n3. Error Statistics:")
	fmt.Printf("   Total Errors: %d\n", stats.TotalErrors)
	fmt.Printf("   Failed API Requests: %d\n", stats.FailedAPIRequests)

	fmt.Println("\n4. Most Hit Endpoints:")
	printTopPaths(stats.PathActivity, 5)

	fmt.Println("\n5. Most Common Errors:")
	printTopErrors(stats.ErrorPatterns, 5)
}

func printTopPaths(paths map[string]int, limit int) {
	type pathActivity struct {
		path  string
		count int
	}

	var activities []pathActivity
	for path, count := range paths {
		activities = append(activities, pathActivity{path, count})
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].count > activities[j].count
	})

	for i, activity := range activities {
		if i >= limit {
			break
		}
		fmt.Printf("   %s: %d requests\n", activity.path, activity.count)
	}
}

func printTopErrors(errors map[string]int, limit int) {
	type errorCount struct {
		error string
		count int
	}

	var errorList []errorCount
	for err, count := range errors {
		errorList = append(errorList, errorCount{err, count})
	}

	sort.Slice(errorList, func(i, j int) bool {
		return errorList[i].count > errorList[j].count
	})

	for i, err := range errorList {
		if i >= limit {
			break
		}
		fmt.Printf("   %s: %d occurrences\n", err.error, err.count)
	}
}
