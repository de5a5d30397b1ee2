package service

import "github.com/nutriplan/nutriplan-backend/pkg/model"

// mealTemplate is one candidate meal definition. Nutrition is filled in by
// the generator from the slot's calorie allocation, not stored here.
type mealTemplate struct {
	Name         string
	Description  string
	Ingredients  []model.Ingredient
	Instructions []string
	PrepTimeMin  int
	CookTimeMin  int
	Servings     int
}

// templateCategory is the coarse diet grouping for template pools. The
// vegetarian-safe pool serves vegetarian and vegan profiles; the full pool
// is a superset that adds meat and fish entries.
type templateCategory string

const (
	categoryFull           templateCategory = "full"
	categoryVegetarianSafe templateCategory = "vegetarian_safe"
)

// categoryForDiet maps a diet type to its template pool category.
// TODO: vegan profiles currently draw from the vegetarian-safe pool, which
// still contains dairy and egg entries; needs a dedicated vegan pool.
func categoryForDiet(diet model.DietType) templateCategory {
	switch diet {
	case model.DietVegetarian, model.DietVegan:
		return categoryVegetarianSafe
	default:
		return categoryFull
	}
}

// templateForDay selects the template for a slot on a given day. Plain
// round-robin over the pool: regeneration never changes past days' meals.
func templateForDay(diet model.DietType, slot model.MealSlot, day int) mealTemplate {
	pool := templatePools[categoryForDiet(diet)][slot]
	return pool[(day-1)%len(pool)]
}

var vegetarianBreakfasts = []mealTemplate{
	{
		Name:        "Greek Yogurt Parfait",
		Description: "Layered yogurt with berries and granola",
		Ingredients: []model.Ingredient{
			{Name: "greek yogurt", Amount: 200, Unit: "g"},
			{Name: "mixed berries", Amount: 100, Unit: "g"},
			{Name: "granola", Amount: 40, Unit: "g"},
		},
		Instructions: []string{"Layer yogurt, berries, and granola in a glass", "Chill 5 minutes before serving"},
		PrepTimeMin:  5, CookTimeMin: 0, Servings: 1,
	},
	{
		Name:        "Overnight Oats",
		Description: "Rolled oats soaked with milk, chia, and banana",
		Ingredients: []model.Ingredient{
			{Name: "rolled oats", Amount: 60, Unit: "g"},
			{Name: "milk", Amount: 200, Unit: "ml"},
			{Name: "chia seeds", Amount: 15, Unit: "g"},
			{Name: "banana", Amount: 1, Unit: "pc"},
		},
		Instructions: []string{"Combine oats, milk, and chia in a jar", "Refrigerate overnight", "Top with sliced banana"},
		PrepTimeMin:  10, CookTimeMin: 0, Servings: 1,
	},
	{
		Name:        "Avocado Toast with Egg",
		Description: "Whole-grain toast, smashed avocado, poached egg",
		Ingredients: []model.Ingredient{
			{Name: "whole-grain bread", Amount: 2, Unit: "slice"},
			{Name: "avocado", Amount: 1, Unit: "pc"},
			{Name: "egg", Amount: 1, Unit: "pc"},
		},
		Instructions: []string{"Toast the bread", "Smash avocado onto toast", "Top with a poached egg"},
		PrepTimeMin:  5, CookTimeMin: 5, Servings: 1,
	},
	{
		Name:        "Spinach Mushroom Omelette",
		Description: "Two-egg omelette with sauteed vegetables",
		Ingredients: []model.Ingredient{
			{Name: "eggs", Amount: 2, Unit: "pc"},
			{Name: "spinach", Amount: 50, Unit: "g"},
			{Name: "mushrooms", Amount: 80, Unit: "g"},
		},
		Instructions: []string{"Saute mushrooms and spinach", "Pour in beaten eggs", "Fold and serve"},
		PrepTimeMin:  5, CookTimeMin: 10, Servings: 1,
	},
	{
		Name:        "Berry Smoothie Bowl",
		Description: "Blended frozen berries topped with seeds and coconut",
		Ingredients: []model.Ingredient{
			{Name: "frozen berries", Amount: 150, Unit: "g"},
			{Name: "plant milk", Amount: 150, Unit: "ml"},
			{Name: "pumpkin seeds", Amount: 20, Unit: "g"},
		},
		Instructions: []string{"Blend berries with milk until thick", "Pour into a bowl and add toppings"},
		PrepTimeMin:  10, CookTimeMin: 0, Servings: 1,
	},
}

var vegetarianLunches = []mealTemplate{
	{
		Name:        "Chickpea Buddha Bowl",
		Description: "Roasted chickpeas, quinoa, and vegetables with tahini",
		Ingredients: []model.Ingredient{
			{Name: "chickpeas", Amount: 150, Unit: "g"},
			{Name: "quinoa", Amount: 80, Unit: "g"},
			{Name: "roasted vegetables", Amount: 150, Unit: "g"},
			{Name: "tahini", Amount: 20, Unit: "g"},
		},
		Instructions: []string{"Cook quinoa", "Roast chickpeas and vegetables", "Assemble bowl and drizzle tahini"},
		PrepTimeMin:  15, CookTimeMin: 25, Servings: 1,
	},
	{
		Name:        "Lentil Soup with Crusty Bread",
		Description: "Hearty red lentil and tomato soup",
		Ingredients: []model.Ingredient{
			{Name: "red lentils", Amount: 100, Unit: "g"},
			{Name: "tomatoes", Amount: 200, Unit: "g"},
			{Name: "onion", Amount: 1, Unit: "pc"},
			{Name: "bread", Amount: 1, Unit: "slice"},
		},
		Instructions: []string{"Soften onion, add lentils and tomatoes", "Simmer 20 minutes", "Serve with bread"},
		PrepTimeMin:  10, CookTimeMin: 25, Servings: 2,
	},
	{
		Name:        "Caprese Pasta Salad",
		Description: "Pasta with tomato, mozzarella, and basil",
		Ingredients: []model.Ingredient{
			{Name: "pasta", Amount: 90, Unit: "g"},
			{Name: "cherry tomatoes", Amount: 120, Unit: "g"},
			{Name: "mozzarella", Amount: 80, Unit: "g"},
			{Name: "basil", Amount: 10, Unit: "g"},
		},
		Instructions: []string{"Cook and cool the pasta", "Toss with tomatoes, mozzarella, and basil"},
		PrepTimeMin:  10, CookTimeMin: 12, Servings: 1,
	},
	{
		Name:        "Falafel Wrap",
		Description: "Falafel with salad and hummus in a flatbread",
		Ingredients: []model.Ingredient{
			{Name: "falafel", Amount: 4, Unit: "pc"},
			{Name: "flatbread", Amount: 1, Unit: "pc"},
			{Name: "hummus", Amount: 40, Unit: "g"},
			{Name: "salad mix", Amount: 60, Unit: "g"},
		},
		Instructions: []string{"Warm the falafel and flatbread", "Spread hummus, add salad and falafel, roll up"},
		PrepTimeMin:  8, CookTimeMin: 10, Servings: 1,
	},
	{
		Name:        "Tofu Stir-Fry with Rice",
		Description: "Crispy tofu and vegetables over jasmine rice",
		Ingredients: []model.Ingredient{
			{Name: "firm tofu", Amount: 150, Unit: "g"},
			{Name: "mixed vegetables", Amount: 200, Unit: "g"},
			{Name: "jasmine rice", Amount: 80, Unit: "g"},
			{Name: "soy sauce", Amount: 15, Unit: "ml"},
		},
		Instructions: []string{"Cook rice", "Fry tofu until golden", "Stir-fry vegetables, combine with soy sauce"},
		PrepTimeMin:  15, CookTimeMin: 15, Servings: 1,
	},
}

var vegetarianDinners = []mealTemplate{
	{
		Name:        "Vegetable Curry with Basmati",
		Description: "Coconut vegetable curry over basmati rice",
		Ingredients: []model.Ingredient{
			{Name: "mixed vegetables", Amount: 250, Unit: "g"},
			{Name: "coconut milk", Amount: 150, Unit: "ml"},
			{Name: "curry paste", Amount: 20, Unit: "g"},
			{Name: "basmati rice", Amount: 80, Unit: "g"},
		},
		Instructions: []string{"Fry curry paste, add vegetables", "Pour in coconut milk and simmer", "Serve over rice"},
		PrepTimeMin:  15, CookTimeMin: 20, Servings: 2,
	},
	{
		Name:        "Black Bean Tacos",
		Description: "Spiced black beans in corn tortillas with salsa",
		Ingredients: []model.Ingredient{
			{Name: "black beans", Amount: 150, Unit: "g"},
			{Name: "corn tortillas", Amount: 3, Unit: "pc"},
			{Name: "salsa", Amount: 60, Unit: "g"},
			{Name: "avocado", Amount: 0.5, Unit: "pc"},
		},
		Instructions: []string{"Warm beans with spices", "Heat tortillas", "Fill and top with salsa and avocado"},
		PrepTimeMin:  10, CookTimeMin: 10, Servings: 1,
	},
	{
		Name:        "Mushroom Risotto",
		Description: "Creamy arborio rice with mushrooms",
		Ingredients: []model.Ingredient{
			{Name: "arborio rice", Amount: 90, Unit: "g"},
			{Name: "mushrooms", Amount: 150, Unit: "g"},
			{Name: "vegetable stock", Amount: 500, Unit: "ml"},
		},
		Instructions: []string{"Saute mushrooms", "Add rice and ladle in stock gradually", "Stir until creamy"},
		PrepTimeMin:  10, CookTimeMin: 30, Servings: 1,
	},
	{
		Name:        "Stuffed Bell Peppers",
		Description: "Peppers filled with rice, beans, and tomato",
		Ingredients: []model.Ingredient{
			{Name: "bell peppers", Amount: 2, Unit: "pc"},
			{Name: "cooked rice", Amount: 120, Unit: "g"},
			{Name: "kidney beans", Amount: 100, Unit: "g"},
		},
		Instructions: []string{"Mix rice, beans, and tomato", "Stuff peppers and bake 25 minutes"},
		PrepTimeMin:  15, CookTimeMin: 25, Servings: 2,
	},
	{
		Name:        "Eggplant Parmesan",
		Description: "Baked eggplant layered with tomato and cheese",
		Ingredients: []model.Ingredient{
			{Name: "eggplant", Amount: 1, Unit: "pc"},
			{Name: "tomato sauce", Amount: 200, Unit: "ml"},
			{Name: "parmesan", Amount: 40, Unit: "g"},
		},
		Instructions: []string{"Slice and roast eggplant", "Layer with sauce and cheese", "Bake until bubbling"},
		PrepTimeMin:  20, CookTimeMin: 30, Servings: 2,
	},
}

var vegetarianSnacks = []mealTemplate{
	{
		Name:        "Hummus with Carrot Sticks",
		Description: "Classic hummus with raw vegetables",
		Ingredients: []model.Ingredient{
			{Name: "hummus", Amount: 60, Unit: "g"},
			{Name: "carrots", Amount: 100, Unit: "g"},
		},
		Instructions: []string{"Cut carrots into sticks", "Serve with hummus"},
		PrepTimeMin:  5, CookTimeMin: 0, Servings: 1,
	},
	{
		Name:        "Trail Mix",
		Description: "Nuts, seeds, and dried fruit",
		Ingredients: []model.Ingredient{
			{Name: "mixed nuts", Amount: 30, Unit: "g"},
			{Name: "dried fruit", Amount: 20, Unit: "g"},
		},
		Instructions: []string{"Combine and portion into a small container"},
		PrepTimeMin:  2, CookTimeMin: 0, Servings: 1,
	},
	{
		Name:        "Apple with Peanut Butter",
		Description: "Sliced apple with a spoon of peanut butter",
		Ingredients: []model.Ingredient{
			{Name: "apple", Amount: 1, Unit: "pc"},
			{Name: "peanut butter", Amount: 20, Unit: "g"},
		},
		Instructions: []string{"Slice the apple", "Serve with peanut butter for dipping"},
		PrepTimeMin:  3, CookTimeMin: 0, Servings: 1,
	},
	{
		Name:        "Roasted Chickpeas",
		Description: "Crunchy oven-roasted spiced chickpeas",
		Ingredients: []model.Ingredient{
			{Name: "chickpeas", Amount: 100, Unit: "g"},
			{Name: "olive oil", Amount: 5, Unit: "ml"},
		},
		Instructions: []string{"Toss chickpeas in oil and spices", "Roast 20 minutes until crisp"},
		PrepTimeMin:  5, CookTimeMin: 20, Servings: 1,
	},
}

// fullBreakfasts extends the vegetarian-safe pool with meat and fish entries.
var fullBreakfasts = append([]mealTemplate{
	{
		Name:        "Scrambled Eggs with Turkey Bacon",
		Description: "Soft scrambled eggs, turkey bacon, and toast",
		Ingredients: []model.Ingredient{
			{Name: "eggs", Amount: 2, Unit: "pc"},
			{Name: "turkey bacon", Amount: 2, Unit: "slice"},
			{Name: "whole-grain bread", Amount: 1, Unit: "slice"},
		},
		Instructions: []string{"Crisp the bacon", "Scramble the eggs gently", "Serve with toast"},
		PrepTimeMin:  5, CookTimeMin: 10, Servings: 1,
	},
	{
		Name:        "Smoked Salmon Bagel",
		Description: "Bagel with cream cheese and smoked salmon",
		Ingredients: []model.Ingredient{
			{Name: "bagel", Amount: 1, Unit: "pc"},
			{Name: "cream cheese", Amount: 30, Unit: "g"},
			{Name: "smoked salmon", Amount: 60, Unit: "g"},
		},
		Instructions: []string{"Toast the bagel", "Spread cream cheese and layer salmon"},
		PrepTimeMin:  5, CookTimeMin: 3, Servings: 1,
	},
}, vegetarianBreakfasts...)

var fullLunches = append([]mealTemplate{
	{
		Name:        "Grilled Chicken Salad",
		Description: "Grilled chicken breast over mixed greens",
		Ingredients: []model.Ingredient{
			{Name: "chicken breast", Amount: 150, Unit: "g"},
			{Name: "mixed greens", Amount: 100, Unit: "g"},
			{Name: "olive oil", Amount: 10, Unit: "ml"},
		},
		Instructions: []string{"Grill the chicken and slice", "Toss greens with oil", "Top with chicken"},
		PrepTimeMin:  10, CookTimeMin: 15, Servings: 1,
	},
	{
		Name:        "Tuna Rice Bowl",
		Description: "Seared tuna with rice, edamame, and sesame",
		Ingredients: []model.Ingredient{
			{Name: "tuna steak", Amount: 120, Unit: "g"},
			{Name: "rice", Amount: 80, Unit: "g"},
			{Name: "edamame", Amount: 60, Unit: "g"},
		},
		Instructions: []string{"Cook rice", "Sear tuna briefly each side", "Assemble bowl with edamame"},
		PrepTimeMin:  10, CookTimeMin: 15, Servings: 1,
	},
	{
		Name:        "Turkey Club Sandwich",
		Description: "Turkey, lettuce, and tomato on toasted bread",
		Ingredients: []model.Ingredient{
			{Name: "turkey slices", Amount: 100, Unit: "g"},
			{Name: "bread", Amount: 3, Unit: "slice"},
			{Name: "lettuce", Amount: 30, Unit: "g"},
			{Name: "tomato", Amount: 1, Unit: "pc"},
		},
		Instructions: []string{"Toast the bread", "Layer turkey and vegetables", "Cut into quarters"},
		PrepTimeMin:  10, CookTimeMin: 5, Servings: 1,
	},
}, vegetarianLunches...)

var fullDinners = append([]mealTemplate{
	{
		Name:        "Baked Salmon with Asparagus",
		Description: "Oven-baked salmon fillet with roasted asparagus",
		Ingredients: []model.Ingredient{
			{Name: "salmon fillet", Amount: 180, Unit: "g"},
			{Name: "asparagus", Amount: 150, Unit: "g"},
			{Name: "lemon", Amount: 0.5, Unit: "pc"},
		},
		Instructions: []string{"Season salmon and asparagus", "Bake 15 minutes", "Finish with lemon"},
		PrepTimeMin:  10, CookTimeMin: 15, Servings: 1,
	},
	{
		Name:        "Beef Stir-Fry with Noodles",
		Description: "Sliced beef and vegetables over egg noodles",
		Ingredients: []model.Ingredient{
			{Name: "beef strips", Amount: 150, Unit: "g"},
			{Name: "egg noodles", Amount: 90, Unit: "g"},
			{Name: "stir-fry vegetables", Amount: 200, Unit: "g"},
		},
		Instructions: []string{"Cook noodles", "Sear beef, add vegetables", "Toss everything with sauce"},
		PrepTimeMin:  15, CookTimeMin: 12, Servings: 1,
	},
	{
		Name:        "Lemon Herb Roast Chicken",
		Description: "Roast chicken thigh with potatoes and herbs",
		Ingredients: []model.Ingredient{
			{Name: "chicken thigh", Amount: 200, Unit: "g"},
			{Name: "baby potatoes", Amount: 200, Unit: "g"},
			{Name: "rosemary", Amount: 5, Unit: "g"},
		},
		Instructions: []string{"Season chicken and potatoes", "Roast 35 minutes until golden"},
		PrepTimeMin:  10, CookTimeMin: 35, Servings: 1,
	},
}, vegetarianDinners...)

var fullSnacks = append([]mealTemplate{
	{
		Name:        "Beef Jerky and Almonds",
		Description: "Lean jerky with a handful of almonds",
		Ingredients: []model.Ingredient{
			{Name: "beef jerky", Amount: 30, Unit: "g"},
			{Name: "almonds", Amount: 20, Unit: "g"},
		},
		Instructions: []string{"Portion and serve"},
		PrepTimeMin:  2, CookTimeMin: 0, Servings: 1,
	},
}, vegetarianSnacks...)

// templatePools is the fixed template table indexed by category then slot.
var templatePools = map[templateCategory]map[model.MealSlot][]mealTemplate{
	categoryVegetarianSafe: {
		model.SlotBreakfast: vegetarianBreakfasts,
		model.SlotLunch:     vegetarianLunches,
		model.SlotDinner:    vegetarianDinners,
		model.SlotSnacks:    vegetarianSnacks,
	},
	categoryFull: {
		model.SlotBreakfast: fullBreakfasts,
		model.SlotLunch:     fullLunches,
		model.SlotDinner:    fullDinners,
		model.SlotSnacks:    fullSnacks,
	},
}
