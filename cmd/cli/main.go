// Command mindmates is a CLI client for the MindMates service.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc/status"

	"github.com/and161185/mindmates/internal/api"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

type globalOpts struct {
	addr      string
	caPath    string
	insecure  bool
	plaintext bool
	timeout   time.Duration
}

// rpcFunc performs one call and returns the value to print.
type rpcFunc func(ctx context.Context, c *api.Client) (any, error)

// call dials the server, optionally with the stored token, runs fn and prints its result as JSON.
func (o *globalOpts) call(cmd *cobra.Command, authed bool, fn rpcFunc) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	var token string
	if authed {
		t, err := loadToken()
		if err != nil {
			return err
		}
		token = t
	}
	cc, cli, err := dial(o, token)
	if err != nil {
		return err
	}
	defer cc.Close()

	out, err := fn(ctx, cli)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), out)
}

func newRootCmd() *cobra.Command {
	o := &globalOpts{}
	root := &cobra.Command{
		Use:           "mindmates",
		Short:         "CLI client for the MindMates wellness service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&o.addr, "addr", "localhost:8443", "server addr")
	pf.StringVar(&o.caPath, "cacert", "", "CA cert (PEM)")
	pf.BoolVar(&o.insecure, "insecure", false, "skip cert verify (dev)")
	pf.BoolVar(&o.plaintext, "plaintext", false, "connect without TLS (dev)")
	pf.DurationVar(&o.timeout, "timeout", 30*time.Second, "per-command deadline")

	root.AddCommand(
		&cobra.Command{
			Use:   "version",
			Short: "Print the client version",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "mindmates %s (%s)\n", version, buildDate)
			},
		},
	)
	root.AddCommand(authCmds(o)...)
	root.AddCommand(
		profileCmd(o),
		checkInCmd(o),
		challengesCmd(o),
		gamesCmd(o),
		achievementsCmd(o),
		moodCmd(o),
		journalCmd(o),
		recordingsCmd(o),
		friendsCmd(o),
		resetCmd(o),
	)
	return root
}

// main runs the root command and reports RPC failures with their status code.
func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fail(os.Stderr, err)
		os.Exit(1)
	}
}

func fail(w io.Writer, err error) {
	if s, ok := status.FromError(err); ok {
		fmt.Fprintf(w, "rpc error: code=%s msg=%s\n", s.Code(), s.Message())
		return
	}
	fmt.Fprintln(w, err)
}
