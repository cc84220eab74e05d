package cmd

import (
	"github.com/etnz/savings/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	entry := map[string]complete.Predictor{
		"d":       predict.Something,
		"total":   predict.Something,
		"salary":  predict.Something,
		"fixed":   predict.Something,
		"expense": predict.Something,
		"note":    predict.Something,
	}
	add := map[string]complete.Predictor{"yes": predict.Nothing}
	for k, v := range entry {
		add[k] = v
	}
	summary := map[string]complete.Predictor{
		"s": predict.Something,
		"e": predict.Something,
		"p": predict.Set{"monthly", "quarterly", "yearly"},
		"d": predict.Something,
	}

	topics, _ := docs.GetAllTopics()

	return &complete.Command{
		Sub: map[string]*complete.Command{
			"add":     {Flags: add},
			"preview": {Flags: entry},
			"fmt":     {},
			"list": {Flags: map[string]complete.Predictor{
				"s":    predict.Something,
				"e":    predict.Something,
				"head": predict.Something,
				"tail": predict.Something,
			}},
			"summary": {Flags: summary},
			"chart": {Flags: map[string]complete.Predictor{
				"width":  predict.Something,
				"height": predict.Something,
			}},
			"export": {Flags: map[string]complete.Predictor{"q": predict.Set{"$.records", "$.series", "$.series[*].totalDeposit"}}},
			"topic":  {Args: predict.Set(topics)},
			"help":   {},
		},
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.csv"),
			"config":      predict.Files("*.toml"),
			"v":           predict.Nothing,
		},
	}
}
