package netsh

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/valyala/fasttemplate"

	"netprio/application/logging"
	"netprio/domain/adapter"
	"netprio/infrastructure/PAL/exec_commander"
)

const (
	NameTag   = "name"
	MetricTag = "metric"
)

var (
	DefaultQueryCommand      = []string{"netsh", "interface", "ipv4", "show", "interfaces"}
	DefaultSetMetricTemplate = `netsh interface ipv4 set interface "{name}" metric={metric}`
	DefaultSeparator         = " && "
)

var ErrEmptyQueryCommand = errors.New("query command is empty")

type TextDecoder interface {
	Decode(data []byte) string
}

type Options struct {
	QueryCommand      []string
	SetMetricTemplate string
	Separator         string
}

func DefaultOptions() Options {
	return Options{
		QueryCommand:      DefaultQueryCommand,
		SetMetricTemplate: DefaultSetMetricTemplate,
		Separator:         DefaultSeparator,
	}
}

type Wrapper struct {
	commander exec_commander.Commander
	decoder   TextDecoder
	logger    logging.Logger
	query     []string
	setMetric *fasttemplate.Template
	separator string
}

func NewWrapper(
	commander exec_commander.Commander,
	decoder TextDecoder,
	logger logging.Logger,
	options Options,
) (*Wrapper, error) {
	if len(options.QueryCommand) == 0 || strings.TrimSpace(options.QueryCommand[0]) == "" {
		return nil, ErrEmptyQueryCommand
	}
	if err := ValidateSetMetricTemplate(options.SetMetricTemplate); err != nil {
		return nil, err
	}
	tmpl, err := fasttemplate.NewTemplate(options.SetMetricTemplate, "{", "}")
	if err != nil {
		return nil, fmt.Errorf("invalid set-metric template: %w", err)
	}
	if options.Separator == "" {
		options.Separator = DefaultSeparator
	}
	return &Wrapper{
		commander: commander,
		decoder:   decoder,
		logger:    logger,
		query:     options.QueryCommand,
		setMetric: tmpl,
		separator: options.Separator,
	}, nil
}

// ValidateSetMetricTemplate checks that the template references both the
// interface name and the metric.
func ValidateSetMetricTemplate(template string) error {
	for _, tag := range []string{NameTag, MetricTag} {
		if !strings.Contains(template, "{"+tag+"}") {
			return fmt.Errorf("set-metric template %q lacks {%s}", template, tag)
		}
	}
	return nil
}

func (w *Wrapper) ShowInterfaces(ctx context.Context) ([]byte, error) {
	output, err := w.commander.Output(ctx, w.query[0], w.query[1:]...)
	if err != nil {
		return nil, fmt.Errorf("ShowInterfaces error: %v, output: %s", err, w.decoder.Decode(output))
	}
	return output, nil
}

func (w *Wrapper) SetInterfaceMetrics(ctx context.Context, assignments []adapter.MetricAssignment) error {
	if len(assignments) == 0 {
		return nil
	}
	script := w.BatchCommand(assignments)
	w.logger.Printf("netsh: applying %d metric(s): %s", len(assignments), script)
	output, err := w.commander.Shell(ctx, script)
	if err != nil {
		return fmt.Errorf("SetInterfaceMetrics error: %v, output: %s",
			err, strings.TrimSpace(w.decoder.Decode(output)))
	}
	return nil
}

// BatchCommand renders one set-metric command per assignment and joins them
// into a single shell script, in order.
func (w *Wrapper) BatchCommand(assignments []adapter.MetricAssignment) string {
	commands := make([]string, 0, len(assignments))
	for _, a := range assignments {
		commands = append(commands, w.setMetric.ExecuteString(map[string]interface{}{
			NameTag:   a.Name,
			MetricTag: strconv.Itoa(a.Metric),
		}))
	}
	return strings.Join(commands, w.separator)
}
