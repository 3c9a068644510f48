package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fhuszti/r2-uploader-go/internal/orchestrator"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		serverURL string
		direct    bool
	)

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a file to R2 through the uploader service",
		Long: "Upload a file either through the server relay (default) or directly " +
			"to the object store with a presigned URL (--direct).",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpload(cmd.Context(), cmd.OutOrStdout(), serverURL, args[0], direct)
		},
	}

	cmd.Flags().StringVar(&serverURL, "server", envOr("UPLOADER_URL", "http://localhost:8080"), "base URL of the uploader service")
	cmd.Flags().BoolVar(&direct, "direct", false, "upload straight to the object store with a presigned URL")

	return cmd
}

func runUpload(ctx context.Context, out io.Writer, serverURL, path string, direct bool) error {
	f, err := orchestrator.FileFromPath(path)
	if err != nil {
		return err
	}

	o := orchestrator.New(serverURL, orchestrator.WithObserver(func(s orchestrator.Snapshot) {
		if s.Status != "" {
			fmt.Fprintf(out, "[%3d%%] %s\n", s.Progress, s.Status)
		}
		if s.Error != "" {
			fmt.Fprintln(out, s.Error)
		}
	}))

	if err := o.Select(f); err != nil {
		return err
	}

	upload := o.UploadViaServer
	if direct {
		upload = o.UploadDirect
	}
	res, err := upload(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s\n%s (%d bytes, %s)\n%s\n", res.Message, f.Name, f.Size(), res.Type, res.VideoURL)
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
