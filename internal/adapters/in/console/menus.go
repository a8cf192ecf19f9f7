package console

import (
	"context"

	"quickcart/internal/core/application/policies"
	"quickcart/internal/core/domain/model/order"
	"quickcart/internal/core/domain/model/rider"
)

func (c *Console) adminMenu(ctx context.Context, session policies.Session) error {
	admin := c.factory.Admin(session.UserID)
	for {
		c.printf("\n=== Admin Menu ===\n")
		c.printf("1. Add Product\n2. Restock Product\n3. Change Product Price\n4. View Products\n")
		c.printf("5. View All Orders\n6. Update Profile\n7. Logout\n")

		choice, err := c.prompt("Select option: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = c.addProduct(ctx, admin)
		case "2":
			err = c.restockProduct(ctx, admin)
		case "3":
			err = c.changePrice(ctx, admin)
		case "4":
			products, listErr := admin.Products(ctx)
			if listErr != nil {
				c.printError(listErr)
				break
			}
			c.printProducts(products)
		case "5":
			orders, listErr := admin.ViewAllOrders(ctx)
			if listErr != nil {
				c.printError(listErr)
				break
			}
			c.printOrders(orders)
		case "6":
			err = c.updateProfile(ctx, admin.UpdateProfile)
		case "7":
			return nil
		default:
			c.printf("Invalid choice\n")
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) addProduct(ctx context.Context, admin policies.Admin) error {
	name, err := c.prompt("Product name: ")
	if err != nil {
		return err
	}
	price, priceOK, err := c.promptMoney("Price: ")
	if err != nil {
		return err
	}
	stock, stockOK, err := c.promptInt("Stock: ")
	if err != nil {
		return err
	}
	category, err := c.prompt("Category: ")
	if err != nil {
		return err
	}
	if !priceOK || !stockOK {
		c.printf("Invalid price or stock\n")
		return nil
	}

	product, err := admin.AddProduct(ctx, name, price, stock, category)
	if err != nil {
		c.printError(err)
		return nil
	}
	c.printf("Product added\n")
	c.printProduct(product)
	return nil
}

func (c *Console) restockProduct(ctx context.Context, admin policies.Admin) error {
	productID, idOK, err := c.promptID("Product ID: ")
	if err != nil {
		return err
	}
	quantity, qtyOK, err := c.promptInt("Quantity to restock: ")
	if err != nil {
		return err
	}
	if !idOK {
		c.printf("Product not found\n")
		return nil
	}
	if !qtyOK {
		c.printf("Invalid quantity\n")
		return nil
	}

	product, err := admin.Restock(ctx, productID, quantity)
	if err != nil {
		c.printError(err)
		return nil
	}
	c.printf("Product restocked\n")
	c.printProduct(product)
	return nil
}

func (c *Console) changePrice(ctx context.Context, admin policies.Admin) error {
	productID, idOK, err := c.promptID("Product ID: ")
	if err != nil {
		return err
	}
	price, priceOK, err := c.promptMoney("New price: ")
	if err != nil {
		return err
	}
	if !idOK {
		c.printf("Product not found\n")
		return nil
	}
	if !priceOK {
		c.printf("Invalid price\n")
		return nil
	}

	product, err := admin.ChangePrice(ctx, productID, price)
	if err != nil {
		c.printError(err)
		return nil
	}
	c.printf("Price updated\n")
	c.printProduct(product)
	return nil
}

func (c *Console) customerMenu(ctx context.Context, session policies.Session) error {
	customer := c.factory.Customer(session.UserID)
	for {
		c.printf("\n=== Customer Menu ===\n")
		c.printf("1. Browse Products\n2. Add to Cart\n3. View Cart\n4. Place Order\n")
		c.printf("5. View Order History\n6. Update Profile\n7. Logout\n")

		choice, err := c.prompt("Select option: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			products, listErr := customer.Browse(ctx)
			if listErr != nil {
				c.printError(listErr)
				break
			}
			c.printProducts(products)
		case "2":
			err = c.addToCart(ctx, customer)
		case "3":
			entries, cartErr := customer.ViewCart(ctx)
			if cartErr != nil {
				c.printError(cartErr)
				break
			}
			c.printCart(entries)
		case "4":
			placed, placeErr := customer.PlaceOrder(ctx)
			if placeErr != nil {
				c.printError(placeErr)
				break
			}
			c.printf("Order placed\n")
			c.printOrder(placed)
		case "5":
			orders, listErr := customer.ViewOrderHistory(ctx)
			if listErr != nil {
				c.printError(listErr)
				break
			}
			c.printOrders(orders)
		case "6":
			err = c.updateProfile(ctx, customer.UpdateProfile)
		case "7":
			return nil
		default:
			c.printf("Invalid choice\n")
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) addToCart(ctx context.Context, customer policies.Customer) error {
	productID, idOK, err := c.promptID("Product ID: ")
	if err != nil {
		return err
	}
	quantity, qtyOK, err := c.promptInt("Quantity: ")
	if err != nil {
		return err
	}
	if !idOK {
		c.printf("Product not found\n")
		return nil
	}
	if !qtyOK {
		c.printf("Invalid quantity\n")
		return nil
	}

	if err := customer.AddToCart(ctx, productID, quantity); err != nil {
		c.printError(err)
		return nil
	}
	c.printf("Added to cart\n")
	return nil
}

func (c *Console) riderMenu(ctx context.Context, session policies.Session) error {
	r := c.factory.Rider(session.UserID)
	for {
		c.printf("\n=== Rider Menu ===\n")
		c.printf("1. Set Availability\n2. View Pending Orders\n3. Accept Order\n4. Update Delivery Status\n")
		c.printf("5. View Status\n6. Update Profile\n7. Logout\n")

		choice, err := c.prompt("Select option: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = c.setAvailability(ctx, r)
		case "2":
			orders, listErr := r.ViewPendingOrders(ctx)
			if listErr != nil {
				c.printError(listErr)
				break
			}
			c.printOrders(orders)
		case "3":
			err = c.acceptOrder(ctx, r)
		case "4":
			err = c.updateDeliveryStatus(ctx, r)
		case "5":
			status, statusErr := r.Status(ctx)
			if statusErr != nil {
				c.printError(statusErr)
				break
			}
			c.printRider(status)
		case "6":
			err = c.updateProfile(ctx, r.UpdateProfile)
		case "7":
			return nil
		default:
			c.printf("Invalid choice\n")
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) setAvailability(ctx context.Context, r policies.Rider) error {
	c.printf("Available statuses: available, busy, offline\n")
	raw, err := c.prompt("Enter status: ")
	if err != nil {
		return err
	}
	availability, parseErr := rider.ParseAvailability(raw)
	if parseErr != nil {
		c.printf("Invalid status\n")
		return nil
	}

	if err := r.SetAvailability(ctx, availability); err != nil {
		c.printError(err)
		return nil
	}
	c.printf("Availability set to %s\n", availability)
	return nil
}

func (c *Console) acceptOrder(ctx context.Context, r policies.Rider) error {
	orderID, idOK, err := c.promptID("Order ID: ")
	if err != nil {
		return err
	}
	if !idOK {
		c.printf("Order not found\n")
		return nil
	}

	accepted, err := r.AcceptOrder(ctx, orderID)
	if err != nil {
		c.printError(err)
		return nil
	}
	c.printf("Order accepted\n")
	c.printOrder(accepted)
	return nil
}

func (c *Console) updateDeliveryStatus(ctx context.Context, r policies.Rider) error {
	orderID, idOK, err := c.promptID("Order ID: ")
	if err != nil {
		return err
	}
	c.printf("Valid statuses: in_progress, delivered, cancelled\n")
	raw, err := c.prompt("Enter status: ")
	if err != nil {
		return err
	}
	if !idOK {
		c.printf("Order not found\n")
		return nil
	}
	status, parseErr := order.ParseStatus(raw)
	if parseErr != nil {
		c.printf("Invalid status\n")
		return nil
	}

	updated, err := r.UpdateDeliveryStatus(ctx, orderID, status)
	if err != nil {
		c.printError(err)
		return nil
	}
	c.printf("Order status updated\n")
	c.printOrder(updated)
	return nil
}
