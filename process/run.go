// Package process implements program subcommands working with stylesheets.
package process

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cssp/config"
	"cssp/css"
	"cssp/dump"
	"cssp/source"
	"cssp/state"
)

// Run is the action of "parse" subcommand.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("parse")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	// no destination - print to STDOUT
	dst := cmd.Args().Get(1)
	if len(dst) > 0 {
		if dst, err = filepath.Abs(dst); err != nil {
			return err
		}
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.Format = env.Cfg.Output.Format
	if to := cmd.String("to"); len(to) > 0 {
		if env.Format, err = config.ParseOutputFmt(to); err != nil {
			log.Warn("Unknown output format requested, using configured one", zap.Stringer("format", env.Cfg.Output.Format), zap.Error(err))
			env.Format = env.Cfg.Output.Format
		}
	}

	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")

	// Stylesheets without BOM or @charset rule and archives with non UTF-8
	// names may need archaic code page
	if cp := cmd.String("charset"); len(cp) > 0 {
		enc, name, err := source.LookupCharset(cp)
		if err != nil {
			log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", cp), zap.Error(err))
		} else {
			env.CodePage = enc
			log.Debug("Forcefully decoding all non UTF-8 input", zap.String("charset", name))
		}
	}

	if env.RunID, err = uuid.NewV7(); err != nil {
		return fmt.Errorf("unable to generate run id: %w", err)
	}
	log = log.With(zap.Stringer("run", env.RunID))

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("format", env.Format))
	defer func(start time.Time) {
		log.Info("Processing completed", append(env.Stats.Fields(), zap.Duration("elapsed", time.Since(start)))...)
	}(time.Now())

	return process(ctx, src, dst, os.Stdout, log)
}

// process handles the core logic independently of CLI framework. When dst is
// empty results are written to out one after another.
func process(ctx context.Context, src, dst string, out io.Writer, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	collector := source.NewCollector(log, env.CodePage)
	sheets, err := collector.Collect(ctx, src)
	if root := collector.Root(); len(root) > 0 {
		// keep input as is, before any decoding
		if er := env.Rpt.StoreCopy("input/"+filepath.Base(root), root); er != nil {
			log.Warn("Unable to store input in report", zap.String("source", root), zap.Error(er))
		}
	}
	if len(sheets) == 0 {
		if err != nil {
			return err
		}
		log.Warn("No stylesheets found", zap.String("source", src))
		return nil
	}
	env.Stats.Failed += len(multierr.Errors(err))

	parser := env.NewParser()
	for i, sheet := range sheets {
		if er := ctx.Err(); er != nil {
			return multierr.Append(err, er)
		}

		env.Rpt.StoreData(fmt.Sprintf("source-%d.css", i+1), []byte(sheet.Text))

		var er error
		if len(dst) == 0 {
			er = processToWriter(ctx, parser, sheet, i > 0, out, log)
		} else {
			er = processToFile(ctx, parser, sheet, i+1, dst, log)
		}
		if er != nil {
			env.Stats.Failed++
			log.Error("Unable to process stylesheet", zap.String("source", sheet.Name()), zap.Error(er))
			err = multierr.Append(err, fmt.Errorf("%s: %w", sheet.Name(), er))
		}
	}
	return err
}

// parseSheet parses single stylesheet and accounts for it.
func parseSheet(parser *css.Parser, sheet source.Sheet, stats *state.Stats, log *zap.Logger) (parsed *css.Stylesheet, rerr error) {
	defer func(start time.Time) {
		if r := recover(); r != nil {
			log.Error("Parsing ended with panic",
				zap.Any("panic", r), zap.String("source", sheet.Name()), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("parsing panic: %v", r)
			return
		}
		log.Debug("Stylesheet parsed", zap.String("source", sheet.Name()), zap.Duration("elapsed", time.Since(start)),
			zap.Int("rules", len(parsed.Rules)))
	}(time.Now())

	parsed = parser.Parse(sheet.Text, sheet.Name())
	stats.Add(parsed)
	return parsed, nil
}

// processToWriter renders stylesheet to out, separating it from previous
// output with an empty line.
func processToWriter(ctx context.Context, parser *css.Parser, sheet source.Sheet, separate bool, out io.Writer, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	parsed, err := parseSheet(parser, sheet, &env.Stats, log)
	if err != nil {
		return err
	}
	if separate {
		if _, err := io.WriteString(out, "\n"); err != nil {
			return err
		}
	}
	return dump.Write(out, parsed, env.Format, dump.OptionsFrom(&env.Cfg.Output, sheet.Name()))
}

// processToFile renders stylesheet into a file under dst. "n" is ordinal
// number of the stylesheet used to name results in debug report.
func processToFile(ctx context.Context, parser *css.Parser, sheet source.Sheet, n int, dst string, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	parsed, err := parseSheet(parser, sheet, &env.Stats, log)
	if err != nil {
		return err
	}

	outputName := buildOutputPath(sheet, parsed, dst, env)

	// Check if output file already exists
	if _, err := os.Stat(outputName); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	f, err := os.Create(outputName)
	if err != nil {
		return fmt.Errorf("unable to create output file: %w", err)
	}
	err = dump.Write(f, parsed, env.Format, dump.OptionsFrom(&env.Cfg.Output, sheet.Name()))
	if er := f.Close(); er != nil {
		err = multierr.Append(err, fmt.Errorf("unable to close output file: %w", er))
	}
	if err != nil {
		return err
	}
	log.Info("Stylesheet written", zap.String("from", sheet.Name()), zap.String("to", outputName))

	env.Rpt.Store(fmt.Sprintf("result-%d%s", n, env.Format.Ext()), outputName)
	return nil
}
