package mini

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/muesli/reflow/truncate"
	"github.com/picsan-cli/picsan/color"
	"github.com/picsan-cli/picsan/query"
	"github.com/picsan-cli/picsan/style"
	"github.com/picsan-cli/picsan/util"
)

// bind is a non-item menu action, rendered after the regular entries.
type bind struct {
	key, description string
}

func (b *bind) String() string {
	return fmt.Sprintf("[%s] %s", b.key, b.description)
}

func (b *bind) eq(other *bind) bool {
	return other != nil && b.key == other.key
}

var (
	quit      = &bind{"q", "Quit"}
	back      = &bind{"b", "Back"}
	newSearch = &bind{"s", "New search"}
	next      = &bind{"n", "Next page"}
	prev      = &bind{"p", "Previous page"}
	firstPage = &bind{"f", "First page"}
	lastPage  = &bind{"l", "Last page"}
	jump      = &bind{"j", "Jump to page"}
	download  = &bind{"d", "Download again"}
)

// menu shows the items followed by the binds and returns whichever was picked.
// quit is always available as the final option.
func menu[T fmt.Stringer](items []T, binds ...*bind) (*bind, T, error) {
	var zero T

	binds = append(binds, quit)

	options := make([]string, 0, len(items)+len(binds))
	for _, item := range items {
		options = append(options, truncate.StringWithTail(item.String(), uint(truncateAt), "..."))
	}
	for _, b := range binds {
		options = append(options, b.String())
	}

	var choice int
	prompt := &survey.Select{
		Options:  options,
		PageSize: 15,
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		return nil, zero, err
	}

	if choice < len(items) {
		return nil, items[choice], nil
	}
	return binds[choice-len(items)], zero, nil
}

type input struct {
	value string
}

// getInput reads a line, offering historical query suggestions, until the
// validator accepts it.
func getInput(validate func(string) bool) (*input, error) {
	var value string
	prompt := &survey.Input{
		Message: ">",
		Suggest: query.SuggestMany,
	}

	err := survey.AskOne(prompt, &value, survey.WithValidator(func(ans any) error {
		s, ok := ans.(string)
		if !ok || !validate(s) {
			return fmt.Errorf("invalid input")
		}
		return nil
	}))
	if err != nil {
		return nil, err
	}

	return &input{value: value}, nil
}

func title(t string) {
	fmt.Println(style.Bold(style.Fg(color.Purple)(t)))
}

func fail(msg string) {
	fmt.Println(style.Fg(color.Red)(msg))
}

func progress(msg string) (eraser func()) {
	return util.PrintErasable(style.Faint(msg))
}
