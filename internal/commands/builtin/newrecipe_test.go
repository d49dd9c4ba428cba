package builtin

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cookbook/pkg/cooktypes"
)

func TestNewRecipeCommand_Execute(t *testing.T) {
	tests := []struct {
		name            string
		args            []string
		lines           []string
		expectedRecipe  cooktypes.Recipe
		expectedOutput  string
		expectedPrompts []string
	}{
		{
			name:  "name from argument with ingredients and steps",
			args:  []string{"newrecipe", "Banana Bread"},
			lines: []string{"bananas", "3 pcs", "flour", "250 g", "", "Mash the bananas", "Bake for an hour", ""},
			expectedRecipe: cooktypes.Recipe{
				Name: "Banana Bread",
				Ingredients: []cooktypes.Ingredient{
					{Name: "bananas", Unit: "pcs", Amount: 3},
					{Name: "flour", Unit: "g", Amount: 250},
				},
				Steps: []string{"Mash the bananas", "Bake for an hour"},
			},
			expectedOutput: "Successfully created recipe \"Banana Bread\"\n",
			expectedPrompts: []string{
				"Enter a name for ingredient 1 >> ",
				"Enter how much of the ingredient 1 is necessary (amt unit) >> ",
				"Enter a name for ingredient 2 >> ",
				"Enter how much of the ingredient 2 is necessary (amt unit) >> ",
				"Enter a name for ingredient 3 >> ",
				"Enter step 1 >> ",
				"Enter step 2 >> ",
				"Enter step 3 >> ",
			},
		},
		{
			name:           "name prompted until not blank",
			args:           []string{"NEWRECIPE"},
			lines:          []string{"", "  ", "Pancakes", "", ""},
			expectedRecipe: cooktypes.Recipe{Name: "Pancakes"},
			expectedOutput: "Name cannot be empty.\n\nName cannot be empty.\n\nSuccessfully created recipe \"Pancakes\"\n",
			expectedPrompts: []string{
				"Enter recipe name >> ",
				"Enter recipe name >> ",
				"Enter recipe name >> ",
				"Enter a name for ingredient 1 >> ",
				"Enter step 1 >> ",
			},
		},
		{
			name:           "blank argument reported then prompted",
			args:           []string{"newrecipe", ""},
			lines:          []string{"Pancakes", "", ""},
			expectedRecipe: cooktypes.Recipe{Name: "Pancakes"},
			expectedOutput: "Name cannot be empty.\n\nSuccessfully created recipe \"Pancakes\"\n",
			expectedPrompts: []string{
				"Enter recipe name >> ",
				"Enter a name for ingredient 1 >> ",
				"Enter step 1 >> ",
			},
		},
		{
			name:  "invalid amounts restart the ingredient",
			args:  []string{"newrecipe", "Milkshake"},
			lines: []string{"milk", "lots ml", "milk", "200", "milk", "200 ml", "", ""},
			expectedRecipe: cooktypes.Recipe{
				Name:        "Milkshake",
				Ingredients: []cooktypes.Ingredient{{Name: "milk", Unit: "ml", Amount: 200}},
			},
			expectedOutput: "Invalid amount input: not a value.\n\n" +
				"Invalid amount input: no unit provided.\n\n" +
				"Successfully created recipe \"Milkshake\"\n",
			expectedPrompts: []string{
				"Enter a name for ingredient 1 >> ",
				"Enter how much of the ingredient 1 is necessary (amt unit) >> ",
				"Enter a name for ingredient 1 >> ",
				"Enter how much of the ingredient 1 is necessary (amt unit) >> ",
				"Enter a name for ingredient 1 >> ",
				"Enter how much of the ingredient 1 is necessary (amt unit) >> ",
				"Enter a name for ingredient 2 >> ",
				"Enter step 1 >> ",
			},
		},
		{
			name:  "extra words after the unit are ignored",
			args:  []string{"newrecipe", "Tea"},
			lines: []string{"tea", "1.5 tsp loose leaf", "", ""},
			expectedRecipe: cooktypes.Recipe{
				Name:        "Tea",
				Ingredients: []cooktypes.Ingredient{{Name: "tea", Unit: "tsp", Amount: 1.5}},
			},
			expectedOutput: "Successfully created recipe \"Tea\"\n",
			expectedPrompts: []string{
				"Enter a name for ingredient 1 >> ",
				"Enter how much of the ingredient 1 is necessary (amt unit) >> ",
				"Enter a name for ingredient 2 >> ",
				"Enter step 1 >> ",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnv(t, tt.lines...)

			require.NoError(t, env.run(t, tt.args...))

			recipes := env.state.Recipes()
			require.Len(t, recipes, 1)
			assert.Equal(t, tt.expectedRecipe, recipes[0])
			assert.Equal(t, tt.expectedOutput, env.out.String())
			assert.Equal(t, tt.expectedPrompts, env.prompter.Prompts)
			assert.Equal(t, 0, env.prompter.Remaining())
		})
	}
}

func TestNewRecipeCommand_EndOfInput(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		lines  []string
		errMsg string
	}{
		{
			name:   "while reading the name",
			args:   []string{"newrecipe"},
			lines:  []string{""},
			errMsg: "failed to read recipe name",
		},
		{
			name:   "while reading an amount",
			args:   []string{"newrecipe", "Omelette"},
			lines:  []string{"eggs"},
			errMsg: "failed to read ingredients",
		},
		{
			name:   "while reading steps",
			args:   []string{"newrecipe", "Omelette"},
			lines:  []string{"", "Whisk"},
			errMsg: "failed to read steps",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnv(t, tt.lines...)

			err := env.run(t, tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, io.EOF)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Empty(t, env.state.Recipes(), "no recipe is stored on failure")
		})
	}
}
