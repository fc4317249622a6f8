package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/shoplite/shoplite-backend/internal/modules/auth"
	"github.com/shoplite/shoplite-backend/internal/modules/billing"
	"github.com/shoplite/shoplite-backend/internal/modules/catalog"
	"github.com/shoplite/shoplite-backend/internal/modules/user"
)

// Controller drives the interactive menu session. One controller serves one
// session at a time; every operation error is printed once and control
// returns to the calling menu.
type Controller struct {
	in      *bufio.Reader
	out     io.Writer
	stdinFd int // -1 when input is not a terminal

	auth    auth.Service
	users   user.Service
	catalog catalog.Service
	billing billing.Service
}

func NewController(in io.Reader, out io.Writer, authSvc auth.Service, users user.Service, catalogSvc catalog.Service, billingSvc billing.Service) *Controller {
	c := &Controller{
		in:      bufio.NewReader(in),
		out:     out,
		stdinFd: -1,
		auth:    authSvc,
		users:   users,
		catalog: catalogSvc,
		billing: billingSvc,
	}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		c.stdinFd = int(f.Fd())
	}
	return c
}

// Run loops on the top-level menu until the user exits or input ends.
func (c *Controller) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(c.out, "\n=== Shop Management System ===")
		fmt.Fprintln(c.out, "1. Login")
		fmt.Fprintln(c.out, "2. Exit")
		choice, err := c.prompt("Enter your choice: ")
		if err != nil {
			return nil
		}
		switch choice {
		case "1":
			c.loginFlow(ctx)
		case "2":
			fmt.Fprintln(c.out, "Exiting system...")
			return nil
		default:
			fmt.Fprintln(c.out, "Invalid choice. Please try again.")
		}
	}
}

func (c *Controller) loginFlow(ctx context.Context) {
	username, err := c.prompt("Enter username: ")
	if err != nil {
		return
	}
	password, err := c.promptSecret("Enter password: ")
	if err != nil {
		return
	}

	u, err := c.auth.Login(ctx, username, password)
	if err != nil {
		fmt.Fprintln(c.out, "Login failed! Invalid credentials.")
		return
	}

	sess := Session{Username: u.Username, Role: u.Role}
	fmt.Fprintf(c.out, "\nWelcome %s (%s)!\n", sess.Username, sess.Role)

	switch sess.Role {
	case user.RoleAdmin:
		c.adminMenu(ctx, sess)
	case user.RoleShopkeeper:
		c.shopkeeperMenu(ctx, sess)
	case user.RoleClient:
		c.clientMenu(ctx, sess)
	}
}

func (c *Controller) adminMenu(ctx context.Context, sess Session) {
	for {
		fmt.Fprintln(c.out, "\n1. Add Admin")
		fmt.Fprintln(c.out, "2. Add Shopkeeper")
		fmt.Fprintln(c.out, "3. Add Client")
		fmt.Fprintln(c.out, "4. View Products")
		fmt.Fprintln(c.out, "5. Add Product")
		fmt.Fprintln(c.out, "6. Delete Product")
		fmt.Fprintln(c.out, "7. Stock Update")
		fmt.Fprintln(c.out, "8. Generate Sales Report")
		fmt.Fprintln(c.out, "9. Logout")
		choice, err := c.prompt("Enter your choice: ")
		if err != nil {
			return
		}
		switch choice {
		case "1":
			c.addAdmin(ctx, sess)
		case "2":
			c.addUser(ctx, sess, user.RoleShopkeeper)
		case "3":
			c.addUser(ctx, sess, user.RoleClient)
		case "4":
			c.viewProducts(ctx, sess)
		case "5":
			c.addProduct(ctx, sess)
		case "6":
			c.deleteProduct(ctx, sess)
		case "7":
			c.updateStock(ctx, sess)
		case "8":
			c.salesReport(ctx, sess)
		case "9":
			return
		default:
			fmt.Fprintln(c.out, "Invalid choice. Please try again.")
		}
	}
}

func (c *Controller) shopkeeperMenu(ctx context.Context, sess Session) {
	for {
		fmt.Fprintln(c.out, "\n1. Generate Bill")
		fmt.Fprintln(c.out, "2. View Products")
		fmt.Fprintln(c.out, "3. Logout")
		choice, err := c.prompt("Enter your choice: ")
		if err != nil {
			return
		}
		switch choice {
		case "1":
			c.generateBill(ctx, sess)
		case "2":
			c.viewProducts(ctx, sess)
		case "3":
			return
		default:
			fmt.Fprintln(c.out, "Invalid choice. Please try again.")
		}
	}
}

func (c *Controller) clientMenu(ctx context.Context, sess Session) {
	for {
		fmt.Fprintln(c.out, "\n1. View Products")
		fmt.Fprintln(c.out, "2. Logout")
		choice, err := c.prompt("Enter your choice: ")
		if err != nil {
			return
		}
		switch choice {
		case "1":
			c.viewProducts(ctx, sess)
		case "2":
			return
		default:
			fmt.Fprintln(c.out, "Invalid choice. Please try again.")
		}
	}
}

// addAdmin re-verifies the session admin's password before creating another
// admin account.
func (c *Controller) addAdmin(ctx context.Context, sess Session) {
	if !user.CanManageUsers(sess.Role) {
		fmt.Fprintln(c.out, "Access denied.")
		return
	}
	password, err := c.promptSecret("Re-enter your password: ")
	if err != nil {
		return
	}
	ok, err := c.auth.VerifyAdmin(ctx, sess.Username, password)
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	if !ok {
		fmt.Fprintln(c.out, "Admin verification failed. Access denied.")
		return
	}
	c.addUser(ctx, sess, user.RoleAdmin)
}

func (c *Controller) addUser(ctx context.Context, sess Session, role user.Role) {
	if !user.CanManageUsers(sess.Role) {
		fmt.Fprintln(c.out, "Access denied.")
		return
	}
	username, err := c.prompt(fmt.Sprintf("Enter %s username: ", role))
	if err != nil {
		return
	}
	password, err := c.promptSecret("Enter password: ")
	if err != nil {
		return
	}
	if _, err := c.users.Register(ctx, username, password, role); err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "User '%s' added as '%s'.\n", username, role)
}

func (c *Controller) viewProducts(ctx context.Context, sess Session) {
	if !user.CanViewProducts(sess.Role) {
		fmt.Fprintln(c.out, "Access denied.")
		return
	}
	products, err := c.catalog.ListProducts(ctx)
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	if len(products) == 0 {
		fmt.Fprintln(c.out, "No products available.")
		return
	}
	for _, p := range products {
		fmt.Fprintf(c.out, "ID: %d, Name: %s, Category: %s, Price: %.2f, Stock: %d\n",
			p.ID, p.Name, p.Category, p.Price, p.StockQuantity)
	}
}

func (c *Controller) addProduct(ctx context.Context, sess Session) {
	if !user.CanManageCatalog(sess.Role) {
		fmt.Fprintln(c.out, "Access denied.")
		return
	}
	name, err := c.prompt("Enter product name: ")
	if err != nil {
		return
	}
	category, err := c.prompt("Enter category: ")
	if err != nil {
		return
	}
	price, err := c.promptFloat("Enter price: ")
	if err != nil {
		return
	}
	stock, err := c.promptInt("Enter stock quantity: ")
	if err != nil {
		return
	}
	p, err := c.catalog.AddProduct(ctx, catalog.AddProductRequest{
		Name: name, Category: category, Price: price, StockQuantity: stock,
	})
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Product '%s' added successfully.\n", p.Name)
}

func (c *Controller) deleteProduct(ctx context.Context, sess Session) {
	if !user.CanManageCatalog(sess.Role) {
		fmt.Fprintln(c.out, "Access denied.")
		return
	}
	id, err := c.promptInt64("Enter product ID to delete: ")
	if err != nil {
		return
	}
	if err := c.catalog.DeleteProduct(ctx, id); err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Product with ID '%d' deleted successfully.\n", id)
}

func (c *Controller) updateStock(ctx context.Context, sess Session) {
	if !user.CanManageCatalog(sess.Role) {
		fmt.Fprintln(c.out, "Access denied.")
		return
	}
	id, err := c.promptInt64("Enter product ID to be updated: ")
	if err != nil {
		return
	}
	quantity, err := c.promptInt("Enter new stock quantity: ")
	if err != nil {
		return
	}
	if err := c.catalog.UpdateStock(ctx, id, quantity); err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Stock updated for product ID '%d'. New quantity: %d\n", id, quantity)
}

func (c *Controller) generateBill(ctx context.Context, sess Session) {
	if !user.CanBill(sess.Role) {
		fmt.Fprintln(c.out, "Access denied.")
		return
	}
	id, err := c.promptInt64("Enter product ID: ")
	if err != nil {
		return
	}
	quantity, err := c.promptInt("Enter quantity: ")
	if err != nil {
		return
	}
	sale, err := c.billing.GenerateBill(ctx, billing.BillRequest{ProductID: id, Quantity: quantity})
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Bill generated for %d unit(s). Total: $%.2f > %s\n",
		sale.Quantity, sale.TotalAmount, sale.SaleDate.Format("2006-01-02 15:04:05"))
}

func (c *Controller) salesReport(ctx context.Context, sess Session) {
	if !user.CanViewSalesReport(sess.Role) {
		fmt.Fprintln(c.out, "Access denied.")
		return
	}
	sales, err := c.billing.SalesReport(ctx)
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(c.out, "Sales Report:")
	for _, s := range sales {
		fmt.Fprintf(c.out, "Sale %d [%s]: product %d x%d = $%.2f on %s\n",
			s.ID, s.Reference, s.ProductID, s.Quantity, s.TotalAmount,
			s.SaleDate.Format("2006-01-02 15:04:05"))
	}
}

func (c *Controller) prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptSecret reads without echo on a terminal, falling back to a plain
// line read for piped input.
func (c *Controller) promptSecret(label string) (string, error) {
	if c.stdinFd < 0 {
		return c.prompt(label)
	}
	fmt.Fprint(c.out, label)
	secret, err := term.ReadPassword(c.stdinFd)
	fmt.Fprintln(c.out)
	if err != nil {
		return "", err
	}
	return string(secret), nil
}

func (c *Controller) promptInt(label string) (int, error) {
	raw, err := c.prompt(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Fprintln(c.out, "Please enter a whole number.")
		return 0, err
	}
	return n, nil
}

func (c *Controller) promptInt64(label string) (int64, error) {
	raw, err := c.prompt(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		fmt.Fprintln(c.out, "Please enter a whole number.")
		return 0, err
	}
	return n, nil
}

func (c *Controller) promptFloat(label string) (float64, error) {
	raw, err := c.prompt(label)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		fmt.Fprintln(c.out, "Please enter a number.")
		return 0, err
	}
	return f, nil
}
