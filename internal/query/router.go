// Package query routes free-text business questions to the metric engine
// by ordered keyword rules and formats the answers.
package query

import (
	"strings"

	"github.com/theirongolddev/bizlens/internal/model"
	"github.com/theirongolddev/bizlens/internal/money"
	"github.com/theirongolddev/bizlens/internal/pipeline"
)

// Intent names the category a question was classified into.
type Intent string

// Intents in evaluation order.
const (
	IntentProfit    Intent = "profit"
	IntentSales     Intent = "sales"
	IntentCustomers Intent = "customers"
	IntentExpenses  Intent = "expenses"
	IntentQuarter   Intent = "quarter"
	IntentGrowth    Intent = "growth"
	IntentRetention Intent = "retention"
	IntentMarketing Intent = "marketing"
	IntentInsights  Intent = "insights"
	IntentSummary   Intent = "summary"
	IntentHelp      Intent = "help"
)

// NoData is the answer to every question but help over an empty dataset.
const NoData = "No data available. Please load business data first."

// rule pairs a keyword predicate over lowercased text with its handler.
type rule struct {
	intent Intent
	match  func(q string) bool
	handle func(r *Router, q string) string
}

// rules is evaluated top to bottom; the first match wins.
var rules = []rule{
	{IntentProfit, containsAny("profit"), (*Router).profit},
	{IntentSales, containsAny("sales", "revenue"), (*Router).sales},
	{IntentCustomers, containsAny("customer"), (*Router).customers},
	{IntentExpenses, containsAny("expense", "cost"), (*Router).expenses},
	{IntentQuarter, func(q string) bool { return QuarterToken(q) != "" || strings.Contains(q, "quarter") }, (*Router).quarter},
	{IntentGrowth, containsAny("growth", "trend", "increase", "improvement"), (*Router).growth},
	{IntentRetention, containsAny("retention"), (*Router).retention},
	{IntentMarketing, containsAny("marketing", "acquisition"), (*Router).marketing},
	{IntentInsights, containsAny("suggest", "recommend", "advice", "improve", "insight"), (*Router).insights},
	{IntentSummary, containsAny("summary", "overview", "performance"), (*Router).summary},
}

// Response is an answer together with the intent that produced it.
type Response struct {
	Intent Intent `json:"intent"`
	Answer string `json:"answer"`
}

// Router answers questions over one engine. It holds no mutable state and
// is safe for concurrent use.
type Router struct {
	engine *pipeline.Engine
}

// NewRouter returns a router over engine.
func NewRouter(engine *pipeline.Engine) *Router {
	return &Router{engine: engine}
}

// Engine returns the engine the router dispatches to.
func (r *Router) Engine() *pipeline.Engine { return r.engine }

// Intents lists the keyword intents in evaluation order, followed by the
// help fallback.
func Intents() []Intent {
	out := make([]Intent, 0, len(rules)+1)
	for _, ru := range rules {
		out = append(out, ru.intent)
	}
	return append(out, IntentHelp)
}

// Classify returns the intent of the first rule whose keywords appear in
// text, or IntentHelp.
func Classify(text string) Intent {
	if ru, ok := match(strings.ToLower(text)); ok {
		return ru.intent
	}
	return IntentHelp
}

func match(q string) (rule, bool) {
	for _, ru := range rules {
		if ru.match(q) {
			return ru, true
		}
	}
	return rule{}, false
}

// Ask classifies text and computes its answer.
func (r *Router) Ask(text string) Response {
	q := strings.ToLower(text)
	ru, ok := match(q)
	if !ok {
		return Response{Intent: IntentHelp, Answer: HelpText}
	}
	if r.engine.Dataset().Len() == 0 {
		return Response{Intent: ru.intent, Answer: NoData}
	}
	return Response{Intent: ru.intent, Answer: ru.handle(r, q)}
}

// Answer returns the formatted answer to text.
func (r *Router) Answer(text string) string {
	return r.Ask(text).Answer
}

// Answer builds a one-off router over ds with the default currency
// formatting and answers text.
func Answer(ds *model.Dataset, text string) string {
	return NewRouter(pipeline.New(ds, money.Default())).Answer(text)
}

func containsAny(words ...string) func(string) bool {
	return func(q string) bool {
		for _, w := range words {
			if strings.Contains(q, w) {
				return true
			}
		}
		return false
	}
}
