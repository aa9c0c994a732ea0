package pipeline

import (
	"context"
	"time"

	"github.com/adrianliechti/medlens/pkg/extractor"
	"github.com/adrianliechti/medlens/pkg/summarizer"
	"github.com/adrianliechti/medlens/pkg/table"

	"github.com/google/uuid"
)

type Pipeline struct {
	Extractor  extractor.Provider
	Summarizer summarizer.Provider

	Options Options
}

type Options struct {
	ExtractTimeout   time.Duration
	SummarizeTimeout time.Duration

	Table table.Options
}

type Result struct {
	ID string

	Document *extractor.Document

	// OCR is the document rendered as indented JSON.
	OCR string

	Summary string

	Rows []table.Row
	HTML string
}

func New(e extractor.Provider, s summarizer.Provider, options *Options) *Pipeline {
	p := &Pipeline{
		Extractor:  e,
		Summarizer: s,
	}

	if options != nil {
		p.Options = *options
	}

	return p
}

// Run extracts the text of file, summarizes it and renders the summary as
// table rows. Stages run one after another; the first failure aborts.
func (p *Pipeline) Run(ctx context.Context, file extractor.File) (*Result, error) {
	result := &Result{
		ID: uuid.NewString(),
	}

	document, err := p.Extract(ctx, file)

	if err != nil {
		return nil, err
	}

	data, err := document.JSON()

	if err != nil {
		return nil, wrapError(StageExtract, err)
	}

	result.Document = document
	result.OCR = data

	summary, err := p.summarize(ctx, document)

	if err != nil {
		return nil, wrapError(StageSummarize, err)
	}

	result.Summary = summary.Text

	result.Rows = table.Parse(summary.Text, &p.Options.Table)
	result.HTML = table.Render(result.Rows)

	return result, nil
}

// Extract runs the text recognition stage only.
func (p *Pipeline) Extract(ctx context.Context, file extractor.File) (*extractor.Document, error) {
	ctx, cancel := withTimeout(ctx, p.Options.ExtractTimeout)
	defer cancel()

	document, err := p.Extractor.Extract(ctx, file, nil)

	if err != nil {
		return nil, wrapError(StageExtract, err)
	}

	return document, nil
}

func (p *Pipeline) summarize(ctx context.Context, document *extractor.Document) (*summarizer.Summary, error) {
	ctx, cancel := withTimeout(ctx, p.Options.SummarizeTimeout)
	defer cancel()

	return p.Summarizer.Summarize(ctx, document, nil)
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, d)
}
