package builtin

import (
	"fmt"
	"io"
	"strings"

	"cookbook/internal/console"
	"cookbook/internal/logger"
	"cookbook/internal/state"
	"cookbook/pkg/cooktypes"
)

const (
	recipeNamePrompt = "Enter recipe name >> "
	recipeNameEmpty  = "Name cannot be empty."
)

// NewRecipeCommand builds a recipe interactively: its name (taken from the first
// argument when given), then ingredients and steps until a blank answer.
type NewRecipeCommand struct {
	state    *state.State
	prompter console.Prompter
	out      io.Writer
}

// Name returns the command name "newrecipe" for registration and lookup.
func (c *NewRecipeCommand) Name() string {
	return "newrecipe"
}

// Description returns a brief description of what the newrecipe command does.
func (c *NewRecipeCommand) Description() string {
	return "Builds a new recipe."
}

// Usage returns the syntax of the newrecipe command.
func (c *NewRecipeCommand) Usage() string {
	return `newrecipe ["recipe name"]`
}

// Execute prompts for whatever is missing and stores the recipe.
func (c *NewRecipeCommand) Execute(args []string) error {
	name, err := promptName(args, c.prompter, c.out, recipeNamePrompt, recipeNameEmpty)
	if err != nil {
		return fmt.Errorf("failed to read recipe name: %w", err)
	}

	ingredients, err := c.readIngredients()
	if err != nil {
		return fmt.Errorf("failed to read ingredients: %w", err)
	}

	steps, err := c.readSteps()
	if err != nil {
		return fmt.Errorf("failed to read steps: %w", err)
	}

	c.state.AddRecipe(cooktypes.Recipe{
		Name:        name,
		Ingredients: ingredients,
		Steps:       steps,
	})
	logger.Debug("Recipe stored", "name", name, "ingredients", len(ingredients), "steps", len(steps))

	fmt.Fprintf(c.out, "Successfully created recipe \"%s\"\n", name)
	return nil
}

// readIngredients asks for ingredients until a blank name. An amount that is not
// "<number> <unit>" restarts the same ingredient from its name.
func (c *NewRecipeCommand) readIngredients() ([]cooktypes.Ingredient, error) {
	var ingredients []cooktypes.Ingredient
	for i := 1; ; {
		name, err := c.prompter.ReadLine(fmt.Sprintf("Enter a name for ingredient %d >> ", i))
		if err != nil {
			return nil, err
		}
		if console.IsBlank(name) {
			return ingredients, nil
		}

		answer, err := c.prompter.ReadLine(fmt.Sprintf("Enter how much of the ingredient %d is necessary (amt unit) >> ", i))
		if err != nil {
			return nil, err
		}

		fields := strings.Split(answer, " ")
		amount, ok := console.ParseAmount(fields[0])
		if !ok {
			fmt.Fprintln(c.out, "Invalid amount input: not a value.")
			fmt.Fprintln(c.out)
			continue
		}
		if len(fields) < 2 {
			fmt.Fprintln(c.out, "Invalid amount input: no unit provided.")
			fmt.Fprintln(c.out)
			continue
		}

		ingredients = append(ingredients, cooktypes.Ingredient{Name: name, Unit: fields[1], Amount: amount})
		i++
	}
}

// readSteps asks for steps until a blank answer.
func (c *NewRecipeCommand) readSteps() ([]string, error) {
	var steps []string
	for i := 1; ; i++ {
		step, err := c.prompter.ReadLine(fmt.Sprintf("Enter step %d >> ", i))
		if err != nil {
			return nil, err
		}
		if console.IsBlank(step) {
			return steps, nil
		}
		steps = append(steps, step)
	}
}

// promptName returns args[1] when it is present and not blank. Otherwise it asks
// until a non-blank answer; a blank args[1] is reported once before asking.
func promptName(args []string, p console.Prompter, out io.Writer, prompt, emptyMessage string) (string, error) {
	if len(args) >= 2 {
		if !console.IsBlank(args[1]) {
			return args[1], nil
		}
		fmt.Fprintln(out, emptyMessage)
		fmt.Fprintln(out)
	}
	return console.PromptNonEmpty(p, out, prompt, emptyMessage)
}
