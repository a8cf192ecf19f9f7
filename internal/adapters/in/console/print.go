package console

import (
	"quickcart/internal/core/application/usecases/queries"
)

const timeLayout = "2006-01-02 15:04:05"

func (c *Console) printProducts(products []queries.ProductView) {
	if len(products) == 0 {
		c.printf("No products available\n")
		return
	}
	for _, p := range products {
		c.printProduct(p)
	}
}

func (c *Console) printProduct(p queries.ProductView) {
	c.printf("ID: %s | Name: %s | Price: $%s | Stock: %d | Category: %s\n",
		p.ID, p.Name, p.Price, p.Stock, p.Category)
}

func (c *Console) printOrders(orders []queries.OrderView) {
	if len(orders) == 0 {
		c.printf("No orders found\n")
		return
	}
	for _, o := range orders {
		c.printOrder(o)
	}
}

func (c *Console) printOrder(o queries.OrderView) {
	c.printf("Order ID: %s | Customer: %s | Rider: %s | Status: %s | Total: $%s | Time: %s\n",
		o.ID, o.CustomerName, o.RiderName, o.Status, o.Total, o.CreatedAt.Format(timeLayout))
	for _, item := range o.Items {
		c.printf("  - %s x%d @ $%s = $%s\n", item.Name, item.Quantity, item.UnitPrice, item.Subtotal)
	}
}

func (c *Console) printCart(entries []queries.CartEntryView) {
	if len(entries) == 0 {
		c.printf("Cart is empty\n")
		return
	}
	for _, e := range entries {
		c.printf("- %s x%d (ID: %s)\n", e.Name, e.Quantity, e.ProductID)
	}
}

func (c *Console) printRider(r queries.RiderView) {
	active := "none"
	if r.ActiveOrderID != nil {
		active = r.ActiveOrderID.String()
	}
	c.printf("Rider: %s | Availability: %s | Active order: %s\n", r.Name, r.Availability, active)
}
