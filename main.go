package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ezkit-shop/storefront/client"
	"github.com/ezkit-shop/storefront/config"
	"github.com/ezkit-shop/storefront/models"
	"github.com/ezkit-shop/storefront/store"
	"github.com/ezkit-shop/storefront/utils"
)

// app bundles the per-run state the command loop operates on.
type app struct {
	api      *client.Client
	session  *store.Session
	cart     *store.Cart
	catalog  *store.Catalog
	checkout *store.Checkout
	in       *bufio.Scanner
}

// loginRequired lists the commands that need an authenticated session; they
// are rejected up front instead of bouncing off a backend 401.
var loginRequired = map[string]bool{
	"add": true, "cart": true, "inc": true, "dec": true, "rm": true,
	"discount": true, "checkout": true, "address": true, "submit": true,
	"orders": true, "order": true, "receipt": true, "export": true,
	"profile": true, "addr": true, "addr-add": true, "addr-rm": true,
	"addr-default": true,
}

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	api, err := client.New(cfg)
	if err != nil {
		utils.LogError("Error creating API client: %v", err)
		log.Fatal("Error creating API client:", err)
	}

	a := &app{
		api:     api,
		session: store.NewSession(api),
		cart:    store.NewCart(api),
		catalog: store.NewCatalog(),
		in:      bufio.NewScanner(os.Stdin),
	}

	ctx := context.Background()

	// Derive the initial auth state from the server before taking commands
	if err := a.session.Establish(ctx); err != nil {
		utils.LogError("Error establishing session: %v", err)
	}

	fmt.Printf("%s — type 'help' for commands\n", utils.AppName)
	if a.session.Authenticated() {
		fmt.Printf("Logged in as %s\n", a.session.User().Email)
	}

	for {
		fmt.Print("> ")
		if !a.in.Scan() {
			break
		}
		line := strings.TrimSpace(a.in.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]
		if cmd == "quit" || cmd == "exit" {
			break
		}
		a.dispatch(ctx, cmd, args)
	}
}

func (a *app) dispatch(ctx context.Context, cmd string, args []string) {
	if loginRequired[cmd] && !a.session.Authenticated() {
		fmt.Println("Error:", utils.ErrNotLoggedIn)
		return
	}

	var err error
	switch cmd {
	case "help":
		printHelp()
	case "login":
		err = a.login(ctx, args)
	case "register":
		err = a.register(ctx, args)
	case "logout":
		err = a.session.Logout(ctx)
	case "profile":
		err = a.profile(ctx)
	case "products":
		err = a.products(ctx)
	case "search":
		a.catalog.SetSearch(strings.Join(args, " "))
		a.printPage()
	case "category":
		err = a.setCategory(args)
	case "price":
		err = a.setPriceRange(args)
	case "sort":
		err = a.setSort(args)
	case "page":
		err = a.setPage(args)
	case "add":
		err = a.addToCart(ctx, args)
	case "cart":
		err = a.showCart(ctx)
	case "inc":
		err = a.cartAction(ctx, args, a.cart.Increase)
	case "dec":
		err = a.cartAction(ctx, args, a.cart.Decrease)
	case "rm":
		err = a.cartAction(ctx, args, a.cart.Remove)
	case "discount":
		err = a.applyDiscount(ctx, args)
	case "addr":
		err = a.listAddresses(ctx)
	case "addr-add":
		err = a.addAddress(ctx)
	case "addr-rm":
		err = a.removeAddress(ctx, args)
	case "addr-default":
		err = a.defaultAddress(ctx, args)
	case "checkout":
		err = a.beginCheckout(ctx)
	case "address":
		err = a.selectAddress(args)
	case "submit":
		err = a.submitOrder(ctx)
	case "orders":
		err = a.orders(ctx)
	case "order":
		err = a.order(ctx, args)
	case "receipt":
		err = a.receipt(ctx, args)
	case "export":
		err = a.export(ctx)
	default:
		fmt.Printf("Unknown command %q — type 'help'\n", cmd)
	}
	if err != nil {
		a.session.Observe(err)
		fmt.Println("Error:", err)
	}
}

func printHelp() {
	fmt.Println(`Catalog:
  products                 load and list the catalog
  search <text>            filter by title or description
  category <name|all>      filter by category (iot, smart-home, robotics)
  price <min> <max>        filter by inclusive price range (-1 max = unbounded)
  sort <key>               price-low, price-high, or popularity
  page <n>                 jump to a result page
Cart:
  add <productId> [qty]    add a product to the cart
  cart                     show the cart
  inc|dec|rm <productId>   adjust or remove a line
  discount <code>          apply a discount code (one per cart)
Addresses:
  addr                     list saved addresses
  addr-add                 save a new address (prompts for each field)
  addr-rm <addressId>      delete a saved address
  addr-default <addressId> mark an address as the default
Checkout:
  checkout                 start checkout with the current cart
  address <addressId>      pick a saved delivery address
  submit                   place the order
Orders:
  orders                   list past orders
  order <orderId>          show one order
  receipt <orderId>        save a PDF receipt
  export                   save order history as a spreadsheet
Account:
  login <email> <password> | register <name> <email> <password>
  logout | profile | quit`)
}

func (a *app) login(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return utils.BadRequestError("Usage: login <email> <password>", nil)
	}
	if err := a.session.Login(ctx, args[0], args[1]); err != nil {
		return err
	}
	fmt.Printf("Logged in as %s\n", a.session.User().Email)
	return nil
}

func (a *app) register(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return utils.BadRequestError("Usage: register <name> <email> <password>", nil)
	}
	user, err := a.api.Register(ctx, args[0], args[1], args[2])
	if err != nil {
		return err
	}
	fmt.Printf("Registered %s — now log in\n", user.Email)
	return nil
}

func (a *app) profile(ctx context.Context) error {
	user, err := a.api.GetProfile(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s <%s>\n", user.Name, user.Email)
	return nil
}

func (a *app) products(ctx context.Context) error {
	if err := a.catalog.Load(ctx, a.api); err != nil {
		return err
	}
	a.printPage()
	return nil
}

func (a *app) printPage() {
	page := a.catalog.Page()
	if len(page) == 0 {
		fmt.Println("No products match the current filters")
		return
	}
	for _, p := range page {
		fmt.Printf("%-12s %-30s %10.2f  %-12s pop %d\n", p.ID, utils.Truncate(p.Title, 30), p.Price, p.Category, p.Popularity)
	}
	fmt.Printf("Page %d of %d (%d results)\n", a.catalog.CurrentPage(), a.catalog.TotalPages(), len(a.catalog.Filtered()))
}

func (a *app) setCategory(args []string) error {
	if len(args) != 1 {
		return utils.BadRequestError("Usage: category <name|all>", nil)
	}
	a.catalog.SetCategory(args[0])
	a.printPage()
	return nil
}

func (a *app) setPriceRange(args []string) error {
	if len(args) != 2 {
		return utils.BadRequestError("Usage: price <min> <max>", nil)
	}
	min, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return utils.BadRequestError("Invalid minimum price", err)
	}
	max, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return utils.BadRequestError("Invalid maximum price", err)
	}
	a.catalog.SetPriceRange(min, max)
	a.printPage()
	return nil
}

func (a *app) setSort(args []string) error {
	if len(args) != 1 {
		return utils.BadRequestError("Usage: sort <price-low|price-high|popularity>", nil)
	}
	a.catalog.SetSort(args[0])
	a.printPage()
	return nil
}

func (a *app) setPage(args []string) error {
	if len(args) != 1 {
		return utils.BadRequestError("Usage: page <n>", nil)
	}
	page, err := strconv.Atoi(args[0])
	if err != nil {
		return utils.BadRequestError("Invalid page number", err)
	}
	a.catalog.SetPage(page)
	a.printPage()
	return nil
}

func (a *app) addToCart(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return utils.BadRequestError("Usage: add <productId> [qty]", nil)
	}
	quantity := 1
	if len(args) > 1 {
		q, err := strconv.Atoi(args[1])
		if err != nil {
			return utils.BadRequestError("Invalid quantity", err)
		}
		quantity = q
	}
	if err := a.cart.Add(ctx, args[0], quantity); err != nil {
		return err
	}
	fmt.Printf("Added. Cart now has %d lines\n", len(a.cart.Items()))
	return nil
}

func (a *app) showCart(ctx context.Context) error {
	if err := a.cart.Refresh(ctx); err != nil {
		return err
	}
	items := a.cart.Items()
	if len(items) == 0 {
		fmt.Println("Cart is empty")
		return nil
	}
	for _, item := range items {
		fmt.Printf("%-12s %-30s x%-3d %10.2f\n", item.Product.ID, utils.Truncate(item.Product.Name, 30), item.Quantity, item.Product.Price*float64(item.Quantity))
	}
	fmt.Printf("Subtotal: %.2f", a.cart.Subtotal())
	if a.cart.DiscountApplied() {
		fmt.Printf("  After discount: %.2f", a.cart.Total())
	}
	fmt.Println()
	return nil
}

func (a *app) cartAction(ctx context.Context, args []string, action func(context.Context, string) error) error {
	if len(args) != 1 {
		return utils.BadRequestError("Usage: <command> <productId>", nil)
	}
	return action(ctx, args[0])
}

func (a *app) applyDiscount(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return utils.BadRequestError("Usage: discount <code>", nil)
	}
	if err := a.cart.ApplyDiscountCode(ctx, args[0]); err != nil {
		return err
	}
	fmt.Printf("Discount applied. Total: %.2f\n", a.cart.Total())
	return nil
}

func (a *app) prompt(label string) string {
	fmt.Printf("%s: ", label)
	if !a.in.Scan() {
		return ""
	}
	return strings.TrimSpace(a.in.Text())
}

func (a *app) listAddresses(ctx context.Context) error {
	addresses, err := a.api.GetAddresses(ctx)
	if err != nil {
		return err
	}
	if len(addresses) == 0 {
		fmt.Println("No saved addresses — use 'addr-add'")
		return nil
	}
	for _, addr := range addresses {
		marker := " "
		if addr.IsDefault {
			marker = "*"
		}
		fmt.Printf("%s %-12s %-6s %s, %s %s\n", marker, addr.ID, utils.Title(addr.AddressType), addr.AddressLine1, addr.City, addr.Pincode)
	}
	return nil
}

func (a *app) addAddress(ctx context.Context) error {
	addr := models.Address{
		AddressType:  a.prompt("Type (home/work/other)"),
		AddressLine1: a.prompt("Address line 1"),
		AddressLine2: a.prompt("Address line 2 (optional)"),
		Landmark:     a.prompt("Landmark (optional)"),
		City:         a.prompt("City"),
		State:        a.prompt("State"),
		Pincode:      a.prompt("Pincode"),
		Country:      a.prompt("Country"),
	}
	created, err := a.api.AddAddress(ctx, addr)
	if err != nil {
		return err
	}
	fmt.Printf("Saved address %s\n", created.ID)
	return nil
}

func (a *app) removeAddress(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return utils.BadRequestError("Usage: addr-rm <addressId>", nil)
	}
	if err := a.api.DeleteAddress(ctx, args[0]); err != nil {
		return err
	}
	fmt.Println("Address deleted")
	return nil
}

func (a *app) defaultAddress(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return utils.BadRequestError("Usage: addr-default <addressId>", nil)
	}
	if err := a.api.SetDefaultAddress(ctx, args[0]); err != nil {
		return err
	}
	fmt.Println("Default address updated")
	return nil
}

func (a *app) beginCheckout(ctx context.Context) error {
	a.checkout = store.NewCheckout(a.api)
	if err := a.checkout.Begin(ctx); err != nil {
		a.checkout = nil
		return err
	}
	for _, addr := range a.checkout.Addresses() {
		marker := " "
		if sel := a.checkout.SelectedAddress(); sel != nil && sel.ID == addr.ID {
			marker = "*"
		}
		fmt.Printf("%s %-12s %s, %s %s\n", marker, addr.ID, addr.AddressLine1, addr.City, addr.Pincode)
	}
	fmt.Printf("Subtotal %.2f  Shipping %.2f  Discount %.2f  Total %.2f\n",
		a.checkout.Subtotal(), a.checkout.Shipping(), a.checkout.Discount(), a.checkout.Total())
	fmt.Println("Pick an address with 'address <id>' then 'submit'")
	return nil
}

func (a *app) selectAddress(args []string) error {
	if a.checkout == nil {
		return utils.BadRequestError("Start with 'checkout' first", nil)
	}
	if len(args) != 1 {
		return utils.BadRequestError("Usage: address <addressId>", nil)
	}
	return a.checkout.SelectAddress(args[0])
}

func (a *app) submitOrder(ctx context.Context) error {
	if a.checkout == nil {
		return utils.BadRequestError("Start with 'checkout' first", nil)
	}
	if err := a.checkout.Submit(ctx); err != nil {
		return err
	}
	switch a.checkout.State() {
	case store.CheckoutAwaitingPayment:
		fmt.Printf("Order %s placed — complete payment at:\n%s\n", a.checkout.Order().ID, a.checkout.PaymentLink())
	case store.CheckoutComplete:
		fmt.Printf("Order %s placed. Total %.2f\n", a.checkout.Order().ID, a.checkout.Order().TotalAmount)
	}
	a.checkout = nil
	return nil
}

func (a *app) orders(ctx context.Context) error {
	orders, err := a.api.GetMyOrders(ctx)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		fmt.Println("No orders yet")
		return nil
	}
	for _, o := range orders {
		fmt.Printf("%-12s %s  %10.2f  %s/%s\n", o.ID, o.CreatedAt.Format("2006-01-02"), o.TotalAmount, o.Status, o.PaymentStatus)
	}
	return nil
}

func (a *app) order(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return utils.BadRequestError("Usage: order <orderId>", nil)
	}
	o, err := a.api.GetOrder(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Printf("Order %s placed %s — %s/%s\n", o.ID, o.CreatedAt.Format("2006-01-02 15:04"), o.Status, o.PaymentStatus)
	for _, item := range o.Items {
		fmt.Printf("  %-30s x%-3d %10.2f\n", utils.Truncate(item.Name, 30), item.Quantity, item.Price*float64(item.Quantity))
	}
	fmt.Printf("Subtotal %.2f  Delivery %.2f  Total %.2f\n", o.Subtotal, o.DeliveryCharge, o.TotalAmount)
	return nil
}

func (a *app) receipt(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return utils.BadRequestError("Usage: receipt <orderId>", nil)
	}
	o, err := a.api.GetOrder(ctx, args[0])
	if err != nil {
		return err
	}
	data, err := store.OrderReceiptPDF(o)
	if err != nil {
		return err
	}
	name := fmt.Sprintf("receipt-%s.pdf", o.ID)
	if err := os.WriteFile(name, data, 0644); err != nil {
		return utils.WrapError(err, "failed to save receipt")
	}
	fmt.Println("Saved", name)
	return nil
}

func (a *app) export(ctx context.Context) error {
	orders, err := a.api.GetMyOrders(ctx)
	if err != nil {
		return err
	}
	data, err := store.OrderHistoryExcel(orders)
	if err != nil {
		return err
	}
	name := "order-history.xlsx"
	if err := os.WriteFile(name, data, 0644); err != nil {
		return utils.WrapError(err, "failed to save export")
	}
	fmt.Println("Saved", name)
	return nil
}
