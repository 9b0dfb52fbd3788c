package catalog

import "github.com/flavorvault/recipe-service/internal/domain"

var defaultRecipes = []domain.Recipe{
	{
		ID:       "classic-margherita",
		Name:     "Classic Margherita Pizza",
		Category: "dinner",
		Minutes:  45,
		Ingredients: []string{
			"pizza dough", "tomato sauce", "fresh mozzarella", "basil leaves", "olive oil", "salt",
		},
		Steps: []string{
			"Preheat the oven to 250C with a pizza stone inside.",
			"Stretch the dough and spread a thin layer of tomato sauce.",
			"Top with torn mozzarella and bake for 8-10 minutes.",
			"Finish with basil leaves and a drizzle of olive oil.",
		},
	},
	{
		ID:       "overnight-oats",
		Name:     "Berry Overnight Oats",
		Category: "breakfast",
		Minutes:  10,
		Ingredients: []string{
			"rolled oats", "milk", "greek yogurt", "mixed berries", "honey", "chia seeds",
		},
		Steps: []string{
			"Combine oats, milk, yogurt, and chia seeds in a jar.",
			"Refrigerate overnight.",
			"Top with berries and honey before serving.",
		},
	},
	{
		ID:       "chicken-stir-fry",
		Name:     "Ginger Chicken Stir-Fry",
		Category: "dinner",
		Minutes:  25,
		Ingredients: []string{
			"chicken breast", "broccoli", "bell pepper", "ginger", "garlic", "soy sauce", "rice",
		},
		Steps: []string{
			"Slice the chicken thin and marinate in soy sauce.",
			"Stir-fry ginger and garlic, add chicken until browned.",
			"Add vegetables and cook until crisp-tender.",
			"Serve over steamed rice.",
		},
	},
	{
		ID:       "lentil-soup",
		Name:     "Red Lentil Soup",
		Category: "lunch",
		Minutes:  40,
		Ingredients: []string{
			"red lentils", "onion", "carrot", "cumin", "vegetable stock", "lemon",
		},
		Steps: []string{
			"Sweat the onion and carrot with cumin.",
			"Add lentils and stock, simmer 25 minutes.",
			"Blend partially and finish with lemon juice.",
		},
	},
	{
		ID:       "banana-bread",
		Name:     "Brown Butter Banana Bread",
		Category: "dessert",
		Minutes:  75,
		Ingredients: []string{
			"ripe bananas", "butter", "flour", "brown sugar", "eggs", "baking soda", "walnuts",
		},
		Steps: []string{
			"Brown the butter and let it cool.",
			"Mash bananas and whisk with eggs and sugar.",
			"Fold in dry ingredients and walnuts, pour into a loaf pan.",
			"Bake at 175C for about 55 minutes.",
		},
	},
	{
		ID:       "caprese-salad",
		Name:     "Caprese Salad",
		Category: "lunch",
		Minutes:  10,
		Ingredients: []string{
			"tomatoes", "fresh mozzarella", "basil leaves", "balsamic glaze", "olive oil", "salt",
		},
		Steps: []string{
			"Slice tomatoes and mozzarella and arrange alternating.",
			"Scatter basil, season, and dress with oil and balsamic.",
		},
	},
}
