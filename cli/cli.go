package cli

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"message-info/ui"
)

type (
	Args struct {
		Hash        *HashCmd        `arg:"subcommand:hash" help:"print the identifier of each text"`
		Merge       *MergeCmd       `arg:"subcommand:merge" help:"merge message info dumps, later files win"`
		Color       *ColorCmd       `arg:"subcommand:color" help:"normalize a hex color"`
		Cue         *CueCmd         `arg:"subcommand:cue" help:"look up a cue file name or index"`
		Interactive *InteractiveCmd `arg:"subcommand:interactive" help:"explore identifiers interactively"`
		LogLevel    string          `arg:"--log-level,env:MESSAGE_INFO_LOG_LEVEL" default:"info" help:"debug, info, warn or error"`
	}
	HashCmd struct {
		Texts []string `arg:"positional,required" placeholder:"TEXT"`
	}
	MergeCmd struct {
		From  []string `arg:"positional,required" help:"message info JSON files, in merge order" placeholder:"FILE"`
		To    string   `arg:"required" help:"path to destination file" placeholder:"out.json"`
		Force bool     `help:"overwrite the destination file"`
		Fill  bool     `help:"restore missing string ids from known names"`
	}
	ColorCmd struct {
		Value string `arg:"positional,required" placeholder:"RRGGBB"`
		Hash  bool   `help:"prefix the output with #"`
	}
	CueCmd struct {
		Query string `arg:"positional,required" help:"cue file name or index" placeholder:"NAME|INDEX"`
	}
	InteractiveCmd struct{}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"A CLI utility to compute message identifiers, merge per-language",
			"message info dumps and convert the small lookup values around them.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func NewLogger(w io.Writer, level string) (*slog.Logger, error) {
	var slogLevel slog.Level
	if err := slogLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrapf(err, `NewLogger error with level "%s"`, level)
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slogLevel})
	return slog.New(handler), nil
}

// Dispatch runs the chosen subcommand. Without one, the interactive explorer starts.
func Dispatch(args Args, logger *slog.Logger, stdout io.Writer) error {
	switch {
	case args.Hash != nil:
		return RunHash(stdout, args.Hash.Texts)
	case args.Merge != nil:
		return RunMerge(logger, args.Merge.From, args.Merge.To, args.Merge.Force, args.Merge.Fill)
	case args.Color != nil:
		return RunColor(stdout, args.Color.Value, args.Color.Hash)
	case args.Cue != nil:
		return RunCue(stdout, args.Cue.Query)
	}
	return ui.Start()
}

// ReportError is the single place a failed command is written out.
func ReportError(logger *slog.Logger, err error) {
	logger.Error("command failed", "error", err)
}

func Start() {
	args := Args{}
	parser := arg.MustParse(&args)

	logger, err := NewLogger(os.Stderr, args.LogLevel)
	if err != nil {
		parser.Fail(err.Error())
	}

	if err := Dispatch(args, logger, os.Stdout); err != nil {
		ReportError(logger, err)
		os.Exit(1)
	}
}
