package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go-weather/internal/client/controller"
	"go-weather/internal/client/view"
	"go-weather/pkg/http"
	"go-weather/pkg/log"

	fcolor "github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const usage = `commands:
  type <text>    set the city input
  search         look up the weather for the input (a bare city name works too)
  save           save the input as a city
  edit <id>      rename a saved city
  delete <id>    delete a saved city
  view <name>    show the weather for a saved city
  list           reload the saved cities
  quit`

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix("weather")
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "weather-client",
		Short:         "Look up the weather and manage saved cities",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			timeout := v.GetDuration("timeout")
			if timeout == 0 {
				timeout = -1
			}
			return run(cmd.Context(), v.GetString("api-url"), timeout, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().String("base-url", "http://localhost:5001", "weather api base url (env WEATHER_API_URL)")
	cmd.Flags().Duration("timeout", 0, "request timeout, 0 for none (env WEATHER_TIMEOUT)")
	_ = v.BindPFlag("api-url", cmd.Flags().Lookup("base-url"))
	_ = v.BindPFlag("timeout", cmd.Flags().Lookup("timeout"))

	return cmd
}

func run(parent context.Context, baseURL string, timeout time.Duration, in io.Reader, out io.Writer) error {
	log.SetOutput(os.Stderr)
	if err := log.SetLevel("warn"); err != nil {
		return err
	}

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := http.NewHttpClient(baseURL, http.ClientOptions{
		ReadTimeout: timeout,
		Logger:      http.NewZapLogger(log.Zap()),
	})

	reader := bufio.NewReader(in)
	page := view.NewTerminalPage(reader, out)
	c := controller.New(client, view.NewRenderer(page, page))

	_, _ = fcolor.New(fcolor.FgGreen, fcolor.Bold).Fprintf(out, "weather client for %s\n", client.BaseURL())
	_, _ = fmt.Fprintln(out, usage)

	_ = c.Handle(ctx, controller.Load())

	for {
		if ctx.Err() != nil {
			return nil
		}

		_, _ = fmt.Fprint(out, "> ")
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return nil
		}

		ev, quit, ok := parseCommand(page, out, strings.TrimSpace(line))
		if quit {
			return nil
		}
		if !ok {
			continue
		}

		if err := c.Handle(ctx, ev); err != nil {
			log.Debug("Command failed", zap.Stringer("event", ev.Kind), zap.Error(err))
		}
	}
}

// parseCommand turns a line into an event. ok is false when the line needs no request.
func parseCommand(page view.Page, out io.Writer, line string) (ev controller.Event, quit bool, ok bool) {
	if line == "" {
		return controller.Event{}, false, false
	}

	verb, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(verb) {
	case "quit", "exit":
		return controller.Event{}, true, false
	case "type":
		page.SetCityInput(arg)
		return controller.Event{}, false, false
	case "search":
		if arg != "" {
			page.SetCityInput(arg)
		}
		return controller.Search(), false, true
	case "save":
		if arg != "" {
			page.SetCityInput(arg)
		}
		return controller.Save(), false, true
	case "edit":
		return controller.Edit(arg), false, true
	case "delete":
		return controller.Delete(arg), false, true
	case "view":
		return controller.View(arg), false, true
	case "list":
		return controller.Load(), false, true
	case "help":
		_, _ = fmt.Fprintln(out, usage)
		return controller.Event{}, false, false
	default:
		page.SetCityInput(line)
		return controller.EnterKey(), false, true
	}
}
