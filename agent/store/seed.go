package store

import contractx "github.com/tanpawarit/namaste-bites-agent/agent/contract"

func defaultMenu() []contractx.MenuItem {
	return []contractx.MenuItem{
		{ID: "samosa", Name: "Samosa", Price: 4.50, Description: "Crispy pastry filled with spiced potatoes and peas.", Tags: []string{"vegan", "snack"}},
		{ID: "butter_chicken", Name: "Butter Chicken", Price: 16.00, Description: "Tender chicken cooked in a rich and creamy tomato sauce.", Tags: []string{"main", "non-veg"}},
		{ID: "paneer_tikka", Name: "Paneer Tikka Masala", Price: 14.50, Description: "Grilled paneer cheese in a spiced gravy.", Tags: []string{"vegetarian", "main", "gluten-free"}},
		{ID: "naan", Name: "Garlic Naan", Price: 3.00, Description: "Soft flatbread topped with garlic and cilantro.", Tags: []string{"vegetarian", "bread"}},
		{ID: "mango_lassi", Name: "Mango Lassi", Price: 5.00, Description: "Sweet yogurt drink blended with ripe mangoes.", Tags: []string{"vegetarian", "drink", "cold"}},
	}
}

func defaultInventory() contractx.Inventory {
	return contractx.Inventory{
		"samosa":         {Stock: 50, Unit: "pieces"},
		"butter_chicken": {Stock: 30, Unit: "servings"},
		"paneer_tikka":   {Stock: 25, Unit: "servings"},
		"naan":           {Stock: 100, Unit: "pieces"},
		"mango_lassi":    {Stock: 40, Unit: "glasses"},
	}
}
