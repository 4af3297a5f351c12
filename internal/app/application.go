package app

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/rpager/internal/config"
	"github.com/kk-code-lab/rpager/internal/logging"
	"github.com/kk-code-lab/rpager/internal/textutil"
	"github.com/kk-code-lab/rpager/internal/ui/input"
	pagerui "github.com/kk-code-lab/rpager/internal/ui/pager"
	renderui "github.com/kk-code-lab/rpager/internal/ui/render"
	"github.com/rs/zerolog"
)

// lexerSampleLines is how many leading lines are used to guess the language
// when the file name does not give it away.
const lexerSampleLines = 64

// Options configure a pager run.
type Options struct {
	// Path of the file to show; "" or "-" reads Input instead.
	Path   string
	Input  io.Reader
	Config config.Config
	Logger zerolog.Logger
}

// Document is loaded, highlighted content ready to be paged.
type Document struct {
	Name    string
	Lexer   string
	Style   string
	Content *pagerui.Content[pagerui.TextLine]
}

// LoadDocument reads and highlights the input described by opts.
func LoadDocument(opts Options) (*Document, error) {
	log := logging.Component(opts.Logger, "loader")
	cfg := opts.Config

	var (
		content *pagerui.Content[pagerui.TextLine]
		name    string
		err     error
	)
	if opts.Path == "" || opts.Path == "-" {
		if opts.Input == nil {
			return nil, fmt.Errorf("no input to read")
		}
		name = "stdin"
		content, err = pagerui.ContentFromReader(opts.Input, "", cfg.TabWidth)
	} else {
		name = textutil.NormalizeLine(filepath.Base(opts.Path), textutil.DefaultTabWidth)
		content, err = pagerui.ContentFromFile(opts.Path, cfg.TabWidth)
	}
	if err != nil {
		return nil, err
	}

	filename := opts.Path
	if filename == "-" {
		filename = ""
	}
	lexer := pagerui.LexerFor(filename, cfg.Lexer, leadingText(content, lexerSampleLines))
	highlighter := pagerui.NewChromaHighlighter(lexer, pagerui.StyleByName(cfg.Theme))
	content.WithHighlighter(highlighter)
	if cfg.LineNumbers {
		content.SetDecorator(pagerui.LineNumberDecorator[pagerui.TextLine]{})
	}

	log.Info().
		Str("path", opts.Path).
		Str("lexer", highlighter.LexerName()).
		Str("style", highlighter.StyleName()).
		Int("lines", content.Len()).
		Msg("document loaded")

	return &Document{
		Name:    name,
		Lexer:   highlighter.LexerName(),
		Style:   highlighter.StyleName(),
		Content: content,
	}, nil
}

func leadingText(content *pagerui.Content[pagerui.TextLine], n int) string {
	var b strings.Builder
	for _, l := range content.View(0, n) {
		b.WriteString(l.Line.Content())
		b.WriteByte('\n')
	}
	return b.String()
}

// Application represents the running pager.
type Application struct {
	screen      tcell.Screen
	theme       renderui.ColorTheme
	doc         *Document
	pager       *pagerui.Pager[pagerui.TextLine]
	scroll      *input.ScrollBehavior
	paging      *input.PageScrollBehavior
	logger      zerolog.Logger
	lineNumbers bool
	helpVisible bool
	searching   bool
	query       string
	lastQuery   string
	message     string
	shouldQuit  bool
}

// NewApplication takes over the terminal to page doc.
func NewApplication(doc *Document, opts Options) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return newApplication(screen, doc, opts), nil
}

func newApplication(screen tcell.Screen, doc *Document, opts Options) *Application {
	p := pagerui.New[pagerui.TextLine]()
	p.SetHighlightContext(opts.Config.HighlightContext)
	p.Load(doc.Content)

	app := &Application{
		screen:      screen,
		theme:       renderui.GetColorTheme(),
		doc:         doc,
		pager:       p,
		logger:      logging.Component(opts.Logger, "app"),
		lineNumbers: opts.Config.LineNumbers,
	}
	app.scroll = input.NewScrollBehavior(p).
		ForwardsOn(input.Special(tcell.KeyDown), input.Rune('j'), input.Special(tcell.KeyEnter)).
		BackwardsOn(input.Special(tcell.KeyUp), input.Rune('k')).
		ToBeginningOn(input.Special(tcell.KeyHome), input.Rune('g')).
		ToEndOn(input.Special(tcell.KeyEnd), input.Rune('G'))
	app.paging = input.NewPageScrollBehavior(p, app.pageSize).
		ForwardsOn(input.Special(tcell.KeyPgDn), input.Rune(' '), input.Rune('f'), input.Special(tcell.KeyCtrlF)).
		BackwardsOn(input.Special(tcell.KeyPgUp), input.Rune('b'), input.Special(tcell.KeyCtrlB))
	return app
}

// Close restores the terminal.
func (app *Application) Close() error {
	app.screen.Fini()
	return nil
}

// CurrentLine is the 0-based active line, e.g. for reporting on exit.
func (app *Application) CurrentLine() int {
	return app.pager.CurrentLineIndex()
}

func (app *Application) toggleLineNumbers() {
	app.lineNumbers = !app.lineNumbers
	if app.lineNumbers {
		app.doc.Content.SetDecorator(pagerui.LineNumberDecorator[pagerui.TextLine]{})
	} else {
		app.doc.Content.SetDecorator(pagerui.NoDecorator[pagerui.TextLine]{})
	}
}

// pageSize is the number of content rows, less one so a line of context stays visible.
func (app *Application) pageSize() int {
	_, h := app.screen.Size()
	return h - 2
}
