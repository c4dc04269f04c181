package agent

import (
	"github.com/HKYM39/my-recipe-agents-chat/internal/chat"
	logx "github.com/HKYM39/my-recipe-agents-chat/pkg/logger"
)

// Pricing defines USD cost per 1M tokens for input and output.
type Pricing struct {
	InputPerM  float64
	OutputPerM float64
}

// Gemini standard text pricing per 1M tokens.
var defaultPricing = map[string]Pricing{
	"gemini-2.5-flash":      {InputPerM: 0.30, OutputPerM: 2.50},
	"gemini-2.5-flash-lite": {InputPerM: 0.10, OutputPerM: 0.40},
}

// ResolvePricing returns the pricing for a model, zero when unknown.
func ResolvePricing(model string) Pricing {
	p, ok := defaultPricing[model]
	if !ok {
		return Pricing{}
	}
	return p
}

// ComputeCost converts token usage into USD cost using per-1M pricing.
func ComputeCost(usage *chat.Usage, p Pricing) (inputCost, outputCost, total float64) {
	if usage == nil {
		return 0, 0, 0
	}
	inputCost = p.InputPerM * float64(usage.InputTokens) / 1_000_000.0
	outputCost = p.OutputPerM * float64(usage.OutputTokens) / 1_000_000.0
	total = inputCost + outputCost
	return
}

// logUsageCost records token usage and the derived cost. Cost never leaves
// the server; this is accounting telemetry only.
func logUsageCost(usage *chat.Usage, p Pricing) {
	if usage == nil {
		return
	}
	inC, outC, total := ComputeCost(usage, p)
	logx.Info().
		Int("input_tokens", usage.InputTokens).
		Int("output_tokens", usage.OutputTokens).
		Int("total_tokens", usage.TotalTokens).
		Float64("input_cost_usd", inC).
		Float64("output_cost_usd", outC).
		Float64("total_cost_usd", total).
		Msg("model usage")
}
