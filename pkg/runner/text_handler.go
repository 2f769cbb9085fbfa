package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/tradein/pkg/domain"
)

// TextHandler implements the human-facing line interface.
type TextHandler struct {
	Reader   *bufio.Reader
	Writer   io.Writer
	Renderer ContentRenderer

	inputChan chan inputResult
	startOnce sync.Once
}

type inputResult struct {
	text string
	err  error
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerRenderer configures the markdown renderer used for the summary.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Reader: bufio.NewReader(r),
		Writer: w,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *TextHandler) initPump() {
	h.startOnce.Do(func() {
		h.inputChan = make(chan inputResult)
		go h.pump()
	})
}

// pump reads lines in the background so Input can honor context cancellation.
func (h *TextHandler) pump() {
	for {
		text, err := h.Reader.ReadString('\n')
		if text != "" {
			h.inputChan <- inputResult{text: text}
		}
		if err != nil {
			if err == io.EOF {
				close(h.inputChan)
				return
			}
			h.inputChan <- inputResult{err: err}
			time.Sleep(50 * time.Millisecond)
		}
	}
}

func (h *TextHandler) Output(ctx context.Context, s Screen) error {
	var sb strings.Builder
	switch {
	case s.Result != nil:
		writeResult(&sb, s)
	case s.Done:
		sb.WriteString("Valutazione annullata.\n")
	case s.View.Phase == domain.PhaseSelectConsole:
		writeConsoles(&sb, s)
	case s.View.Phase == domain.PhaseQuestion:
		writeQuestion(&sb, s.View)
	case s.View.Phase == domain.PhaseSummary:
		h.writeSummary(&sb, s)
	}
	_, err := fmt.Fprintln(h.Writer, strings.TrimRight(sb.String(), "\n"))
	return err
}

func writeConsoles(sb *strings.Builder, s Screen) {
	v := s.View
	fmt.Fprintf(sb, "Seleziona la tua console (%s)\n", v.Platform.Label())
	if len(s.Consoles) == 0 {
		sb.WriteString("  Nessuna console disponibile.\n")
	}
	for i, c := range s.Consoles {
		mark := " "
		if v.Console != nil && v.Console.ID == c.ID {
			mark = "*"
		}
		fmt.Fprintf(sb, " %s %d) %s  %s%s\n", mark, i+1, c.Name, s.Currency, c.BasePrice)
	}

	keys := make([]string, 0, len(domain.Platforms()))
	for _, p := range domain.Platforms() {
		keys = append(keys, p.String())
	}
	fmt.Fprintf(sb, "Piattaforme: %s\n", strings.Join(keys, ", "))

	if v.CatalogPending {
		sb.WriteString("(caricamento domande...)\n")
	}
	writeActions(sb, v)
}

func writeQuestion(sb *strings.Builder, v domain.View) {
	fmt.Fprintf(sb, "Passo %d/%d · Domanda %d/%d\n", v.Step, v.FinalStep-1, v.QuestionIndex+1, v.QuestionCount)
	if v.Question == nil {
		writeActions(sb, v)
		return
	}
	sb.WriteString(v.Question.Text + "\n")
	if v.Question.Description != "" {
		sb.WriteString(v.Question.Description + "\n")
	}
	for i, opt := range v.Question.Options {
		mark := " "
		if opt.Value == v.Selected {
			mark = "*"
		}
		fmt.Fprintf(sb, " %s %d) %s\n", mark, i+1, opt.Label)
	}
	writeActions(sb, v)
}

func (h *TextHandler) writeSummary(sb *strings.Builder, s Screen) {
	out := s.Summary
	if h.Renderer != nil {
		if rendered, err := h.Renderer(out); err == nil {
			out = rendered
		}
	}
	sb.WriteString(strings.TrimSpace(out) + "\n")
	fmt.Fprintf(sb, "[a] %s   [s] %s\n", domain.AddTradeInText, domain.SkipTradeIn)
}

func writeResult(sb *strings.Builder, s Screen) {
	name := ""
	if s.Result.Item != nil {
		name = s.Result.Item.ProductName + ": "
	}
	fmt.Fprintf(sb, "Trade-in aggiunto. %s%s%s\n", name, s.Currency, s.Result.FinalValue)
}

func writeActions(sb *strings.Builder, v domain.View) {
	if v.CanContinue {
		fmt.Fprintf(sb, "[c] %s   [q] esci\n", v.ContinueLabel)
		return
	}
	sb.WriteString("[q] esci\n")
}

func (h *TextHandler) Input(ctx context.Context) (string, error) {
	h.initPump()

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
			fmt.Fprint(h.Writer, "> ")
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case res, ok := <-h.inputChan:
			if !ok {
				return "", io.EOF
			}
			if res.err != nil {
				return "", res.err
			}
			clean, err := SanitizeInput(res.text)
			if err != nil {
				fmt.Fprintf(h.Writer, "Errore: %v. Riprova.\n", err)
				continue
			}
			return clean, nil
		}
	}
}

func (h *TextHandler) SystemOutput(ctx context.Context, msg string) error {
	_, err := fmt.Fprintf(h.Writer, "[!] %s\n", msg)
	return err
}
