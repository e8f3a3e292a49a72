package agent

import (
	"context"
	"fmt"

	"github.com/etnz/reconcile"
	"github.com/etnz/reconcile/date"
	"github.com/etnz/reconcile/docs"
	"github.com/etnz/reconcile/renderer"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-pro"

func newFacilitator(model string, experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and of answering the user's request.

			The user compares two versions of the same balance history, an old one and a new one, and
			wants to understand where and why they diverge.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They keep the context of your previous questions.

			Answer with dates and amounts taken from the experts, never guess them.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAuditor returns the expert in charge of the report r.
func NewAuditor(r *reconcile.Report, model string) *Expert {
	lib := AuditorFunctions(r)
	return &Expert{
		Name: "Auditor",
		Description: `This is the Auditor. It reads the reconciliation report: for each date, the old and new
		balances, their difference and the activity recorded in each version.
		Ask the Auditor about any balance, difference or transaction.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an auditor in charge of a reconciliation report between two versions of a balance history.
				Use the Tools to read the report, start with the Summary.

				A difference on a date is explained by the activity of that date, or by a difference carried
				over from an earlier date. Compare the old and new activity lists to find the transactions
				that were added, removed or changed.

				A date missing on one side is not a zero balance.

			` + must(docs.GetTopic("rounding"))}}},
		},
		Library: NewLibrary(lib),
	}
}

// AuditorFunctions returns the tools reading the report r.
func AuditorFunctions(r *reconcile.Report) []Function {
	return []Function{
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "Summary",
				Description: "Summary counts the dates of the report by status and returns the net difference and the first date where both versions diverge.",
				Response: &genai.Schema{
					Type:        genai.TypeObject,
					Description: "The report summary.",
				},
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				return success(id, "Summary", r.Summary())
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "Row",
				Description: "Row returns the old and new balances of a date, their difference and both activity lists. A null balance means the date is missing from that version.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"date": {Type: genai.TypeString, Description: "The date, as YYYY-MM-DD."},
					},
					Required: []string{"date"},
				},
				Response: &genai.Schema{
					Type:        genai.TypeObject,
					Description: "The report row.",
				},
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				key, _ := args["date"].(string)
				row, ok := r.Row(key)
				if !ok {
					return failure(id, "Row", fmt.Errorf("date %q is in neither version", key))
				}
				return success(id, "Row", row)
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "Changes",
				Description: "Changes lists the dates where both versions diverge within a range of dates, with the activity entries found in one version only.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"from": {Type: genai.TypeString, Description: "First date included, as YYYY-MM-DD. Empty for no lower bound."},
						"to":   {Type: genai.TypeString, Description: "Last date included, as YYYY-MM-DD. Empty for no upper bound."},
					},
				},
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "A markdown report of the diverging dates.",
				},
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				var rng date.Range
				for name, bound := range map[string]*date.Date{"from": &rng.From, "to": &rng.To} {
					s, _ := args[name].(string)
					if s == "" {
						continue
					}
					d, err := date.Parse(s)
					if err != nil {
						return failure(id, "Changes", err)
					}
					*bound = d
				}
				from, to := rng.Bounds()
				md := renderer.Markdown(r.Between(from, to).Changed(), renderer.Options{
					Title:        "Changes " + rng.String(),
					ActivityDiff: true,
				})
				return success(id, "Changes", md)
			},
		},
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
