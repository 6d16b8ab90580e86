package main

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"

	"github.com/itsatony/go-funcy"
)

// askHandler prompts with the placeholder argument and returns the answer,
// so <!$ ask Your name?> becomes whatever the user types.
func askHandler(ask func(message string) (string, error)) funcy.Handler {
	return funcy.HandlerFunc(func(_, arg string) (string, error) {
		answer, err := ask(arg)
		if err != nil {
			return "", fmt.Errorf(FmtErrorWithCause, ErrMsgAskFailed, err)
		}
		return answer, nil
	})
}

// surveyAsk reads one line from the terminal.
func surveyAsk(message string) (string, error) {
	var out string
	prompt := &survey.Input{Message: message}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", err
	}
	return out, nil
}
