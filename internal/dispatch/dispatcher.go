// Package dispatch routes a legal question to exactly one answering
// strategy. Priority is fixed: an FAQ key match wins over generation intent,
// which wins over the default retrieval path.
package dispatch

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/lawkit/fatiao/internal/classify"
	"github.com/lawkit/fatiao/internal/confidence"
	"github.com/lawkit/fatiao/internal/faq"
	"github.com/lawkit/fatiao/internal/models"
	"github.com/lawkit/fatiao/internal/retrieval"
	"github.com/lawkit/fatiao/pkg/utils"
)

// Confidence attached to a matched document template. Template selection is
// a keyword match, not a semantic judgment, so it sits below an FAQ hit.
const templateConfidence = 0.85

const templateSuggestion = "模板仅供参考，重要合同建议由律师审核"

// noTemplateAnswer is returned when a drafting request names no known
// contract type.
const noTemplateAnswer = "暂不支持该类型文书的生成，目前支持：租赁合同、买卖合同、借款合同、劳动合同、服务合同"

// Dispatcher composes the classifier, FAQ table, template registry, and
// retriever into a single routing decision per question.
type Dispatcher struct {
	classifier *classify.Classifier
	faqs       *faq.Table
	templates  *TemplateRegistry
	retriever  *retrieval.Retriever
	topK       int
	minScore   float64
	logger     *zap.Logger // optional
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets a logger for routing decisions.
func WithLogger(l *zap.Logger) Option {
	return func(d *Dispatcher) { d.logger = l }
}

// WithRetrievalParams overrides the default top-k and minimum score used on
// the retrieval path.
func WithRetrievalParams(topK int, minScore float64) Option {
	return func(d *Dispatcher) {
		d.topK = topK
		d.minScore = minScore
	}
}

// New creates a dispatcher over the FAQ table and retriever. The classifier
// and template registry are built internally so all three consult the same
// table.
func New(faqs *faq.Table, retriever *retrieval.Retriever, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		classifier: classify.New(faqs),
		faqs:       faqs,
		templates:  NewTemplateRegistry(),
		retriever:  retriever,
		topK:       5,
		minScore:   0.3,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Route decides the answering strategy for a question. The FAQ check runs
// before the intent check: a question containing both an FAQ key and
// generation vocabulary gets the canned answer, never a template.
func (d *Dispatcher) Route(ctx context.Context, question string) (*models.RoutingDecision, error) {
	cls := d.classifier.Classify(question)

	if d.faqs != nil {
		if entry, ok := d.faqs.Match(question); ok {
			d.logDecision(question, models.StrategyFAQAnswer, entry.Key)
			return &models.RoutingDecision{
				Strategy:    models.StrategyFAQAnswer,
				QueryType:   cls.QueryType,
				MatchedFAQ:  entry.Key,
				Answer:      entry.Answer,
				Confidence:  faq.MatchConfidence,
				Suggestions: []string{faq.Suggestion},
			}, nil
		}
	}

	if cls.Intent == models.IntentGenerate {
		d.logDecision(question, models.StrategyDocument, "")
		return d.routeDocument(question, cls), nil
	}

	results, err := d.retriever.Retrieve(ctx, question, d.topK, d.minScore)
	if err != nil {
		return nil, fmt.Errorf("retrieve: %w", err)
	}
	conf, suggestions := confidence.Assess(results, cls.QueryType)
	d.logDecision(question, models.StrategyRetrievalChat, "")
	return &models.RoutingDecision{
		Strategy:    models.StrategyRetrievalChat,
		QueryType:   cls.QueryType,
		Results:     results,
		Confidence:  conf,
		Suggestions: suggestions,
	}, nil
}

func (d *Dispatcher) routeDocument(question string, cls models.ClassificationResult) *models.RoutingDecision {
	decision := &models.RoutingDecision{
		Strategy:  models.StrategyDocument,
		QueryType: cls.QueryType,
	}
	if tpl, ok := d.templates.Match(question); ok {
		decision.ContractType = tpl.ContractType
		decision.Answer = tpl.Body
		decision.Confidence = templateConfidence
		decision.Suggestions = []string{templateSuggestion}
		return decision
	}
	decision.Answer = noTemplateAnswer
	decision.Confidence = 0.3
	decision.Suggestions = []string{templateSuggestion}
	return decision
}

func (d *Dispatcher) logDecision(question string, strategy models.Strategy, faqKey string) {
	if d.logger == nil {
		return
	}
	fields := []zap.Field{
		zap.String("question", utils.Truncate(question, 80)),
		zap.String("strategy", string(strategy)),
	}
	if faqKey != "" {
		fields = append(fields, zap.String("faq_key", faqKey))
	}
	d.logger.Debug("routed question", fields...)
}
