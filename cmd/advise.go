package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/greencure/greencure-cli/advisor"
	"github.com/greencure/greencure-cli/advisory"
	"github.com/greencure/greencure-cli/common"
	"github.com/greencure/greencure-cli/history"
	"github.com/greencure/greencure-cli/llm"
	"github.com/greencure/greencure-cli/logger"
	"github.com/spf13/cobra"
)

// newAdvisor builds a fresh session: one inference client, one empty log.
func newAdvisor() (*advisor.Advisor, error) {
	client, err := llm.NewLLM(provider, model, llm.WithAPITimeout(timeout))
	if err != nil {
		return nil, err
	}
	return advisor.New(client, history.NewLog(), common.WithYamlFile()), nil
}

// runAdvisory executes a single one-shot advisory and prints the response.
func runAdvisory(cmd *cobra.Command, kind advisory.Kind, req advisory.Request) error {
	adv, err := newAdvisor()
	if err != nil {
		logger.Errorf("Failed to create advisor: %v", err)
		return err
	}

	answer, err := adv.Advise(cmd.Context(), kind, req)
	if err != nil {
		return reportAdviseError(kind, err)
	}

	fmt.Println(answer)
	return nil
}

// reportAdviseError maps the error taxonomy onto user-facing messages.
func reportAdviseError(kind advisory.Kind, err error) error {
	var validationErr *advisory.ValidationError
	var transientErr *llm.TransientError
	var fatalErr *llm.FatalError

	switch {
	case errors.As(err, &validationErr):
		fmt.Printf("Invalid input for %s: %v\n", kind.Title(), validationErr)
	case errors.As(err, &transientErr):
		fmt.Printf("The advisory service is unreachable right now, please retry: %v\n", err)
	case errors.As(err, &fatalErr):
		fmt.Printf("Configuration problem, check your API key and model settings: %v\n", err)
	default:
		fmt.Printf("Advisory failed: %v\n", err)
	}
	return err
}

// requestFromFlags collects the given flag names into an advisory request.
// Dashed flag names map onto the underscored field names.
func requestFromFlags(cmd *cobra.Command, names ...string) advisory.Request {
	req := advisory.Request{}
	for _, name := range names {
		value, _ := cmd.Flags().GetString(name)
		req[strings.ReplaceAll(name, "-", "_")] = value
	}
	return req
}
