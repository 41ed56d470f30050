// Duplexcheck - Cisco Catalyst Duplex Status Report
//
// Polls each switch in a device list over SNMP v2c, classifies every
// active Ethernet port as half- or full-duplex, and prints or emails a
// report. Half-duplex on modern links usually means a speed/duplex
// mismatch worth fixing, so those switches are called out in the header.
//
// Examples:
//
//	duplexcheck -c public -l devices.txt                 # report to stdout
//	duplexcheck -c public -d sw-access-01                # single switch
//	duplexcheck -c public -l devices.txt \
//	    -e netops@example.com oncall@example.com \
//	    -s relay.example.com                             # report by email
//	duplexcheck ports -c public -d sw-access-01          # full port listing
//
// Per-device SNMP failures are recorded in the report and never abort the
// run; only configuration and delivery problems exit non-zero.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mikepitagno/cisco-duplex-check/pkg/devlist"
	"github.com/mikepitagno/cisco-duplex-check/pkg/inspect"
	"github.com/mikepitagno/cisco-duplex-check/pkg/inventory"
	"github.com/mikepitagno/cisco-duplex-check/pkg/mail"
	"github.com/mikepitagno/cisco-duplex-check/pkg/report"
	"github.com/mikepitagno/cisco-duplex-check/pkg/settings"
	"github.com/mikepitagno/cisco-duplex-check/pkg/snmp"
	"github.com/mikepitagno/cisco-duplex-check/pkg/util"
	"github.com/mikepitagno/cisco-duplex-check/pkg/version"
)

var (
	communityFlag string // -c
	listFlag      string // -l
	deviceFlag    string // -d
	portFlag      uint16 // -p
	emailFlag     []string
	smtpFlag      string
	timeoutFlag   time.Duration
	cacheDirFlag  string
	verboseFlag   bool
	jsonFlag      bool
)

// errConfig marks configuration problems for exit-code mapping: they exit
// 2 before any device is polled. Delivery and runtime failures exit 1.
var errConfig = errors.New("configuration error")

// Hooks for tests: production builds dial gosnmp and send real mail.
var (
	newDialer = func(cfg snmp.ClientConfig) snmp.Dialer { return cfg }
	newMailer = func(host string) mail.Mailer { return mail.SMTP{Host: host} }
)

func main() {
	// The historical CLI takes "-e FROM TO" as an argument pair; fold it
	// into the single flag value pflag expects before parsing.
	os.Args = normalizeEmailArgs(os.Args)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var cfgErr *devlist.ConfigError
		if errors.Is(err, errConfig) || errors.As(err, &cfgErr) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:               "duplexcheck",
	Short:             "Cisco Catalyst duplex status report",
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
	Long: `Duplexcheck polls Catalyst switches over SNMP and reports which active
ports run half-duplex. Devices that fail SNMP contact are listed under an
SNMP Failure notice instead of aborting the run.

  duplexcheck -c <community> -l <device-list> [-e <from> <to> -s <relay>]`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if skipsInit(cmd) {
			return nil
		}

		if verboseFlag {
			util.SetLogLevel("debug")
		} else {
			util.SetLogLevel("warn")
		}

		// Defaults resolve flag > environment > settings file. The .env
		// load keeps the community string out of shell history and ps.
		if err := godotenv.Load(); err == nil {
			util.Debug("loaded .env")
		}

		s, err := settings.Load()
		if err != nil {
			util.Warnf("Could not load settings: %v", err)
			s = &settings.Settings{}
		}

		if communityFlag == "" {
			communityFlag = os.Getenv("DUPLEXCHECK_COMMUNITY")
		}
		if communityFlag == "" {
			communityFlag = s.Community
		}
		if smtpFlag == "" {
			smtpFlag = os.Getenv("DUPLEXCHECK_SMTP_SERVER")
		}
		if smtpFlag == "" {
			smtpFlag = s.SMTPServer
		}
		if !cmd.Flags().Changed("port") && s.Port != 0 {
			portFlag = s.Port
		}
		if cacheDirFlag == "" {
			cacheDirFlag = s.CacheDir
		}
		return nil
	},
	RunE: runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	if err := validateRun(); err != nil {
		return err
	}

	devices, err := targets()
	if err != nil {
		return err
	}

	ins := newInspector()
	reports := make([]inspect.DeviceReport, 0, len(devices))
	for _, dev := range devices {
		util.WithDevice(dev).Info("polling")
		reports = append(reports, ins.Inspect(dev))
	}

	summary := report.Build(reports)

	if jsonFlag {
		return json.NewEncoder(os.Stdout).Encode(summary)
	}

	text := summary.Text()
	if len(emailFlag) == 2 {
		return newMailer(smtpFlag).Send(mail.Message{
			From:    emailFlag[0],
			To:      emailFlag[1],
			Subject: "Duplex Report",
			Body:    text,
		})
	}

	fmt.Print(text)
	return nil
}

func newInspector() *inspect.Inspector {
	ins := inspect.New(newDialer(snmp.ClientConfig{
		Community: communityFlag,
		Port:      portFlag,
		Timeout:   timeoutFlag,
	}))
	if cacheDirFlag != "" {
		ins.Cache = inventory.NewCache(cacheDirFlag)
	}
	return ins
}

// targets returns the run's device list: the single -d device, or the -l
// file in its original order.
func targets() ([]string, error) {
	if deviceFlag != "" {
		return []string{deviceFlag}, nil
	}
	return devlist.Load(listFlag)
}

func validateRun() error {
	if communityFlag == "" {
		return fmt.Errorf("%w: SNMP community required (-c, DUPLEXCHECK_COMMUNITY, or settings)", errConfig)
	}
	if listFlag == "" && deviceFlag == "" {
		return fmt.Errorf("%w: a device list (-l) or a single device (-d) is required", errConfig)
	}
	if listFlag != "" && deviceFlag != "" {
		return fmt.Errorf("%w: -l and -d are mutually exclusive", errConfig)
	}
	switch len(emailFlag) {
	case 0:
	case 2:
		if smtpFlag == "" {
			return fmt.Errorf("%w: email delivery (-e) requires an SMTP relay (-s)", errConfig)
		}
	default:
		return fmt.Errorf("%w: -e takes a from and to address pair", errConfig)
	}
	return nil
}

// normalizeEmailArgs folds the "-e FROM TO" argument pair into the
// "-e FROM,TO" form a slice flag parses. Already-joined values and flag
// tokens are left alone.
func normalizeEmailArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		out = append(out, args[i])
		if (args[i] == "-e" || args[i] == "--email") && i+2 < len(args) &&
			!strings.HasPrefix(args[i+1], "-") && !strings.HasPrefix(args[i+2], "-") &&
			!strings.Contains(args[i+1], ",") {
			out = append(out, args[i+1]+","+args[i+2])
			i += 2
		}
	}
	return out
}

// skipsInit reports whether cmd manages settings or metadata and must not
// trigger config resolution.
func skipsInit(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "settings", "version", "help", "completion":
			return true
		}
	}
	return false
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("duplexcheck %s\n", version.Info())
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&communityFlag, "community", "c", "", "SNMP community string")
	pf.StringVarP(&deviceFlag, "device", "d", "", "Single target device name or IP")
	pf.Uint16VarP(&portFlag, "port", "p", 161, "SNMP port")
	pf.DurationVar(&timeoutFlag, "timeout", 2*time.Second, "Per-request SNMP timeout")
	pf.StringVar(&cacheDirFlag, "cache-dir", "", "Cache interface inventories under this directory")
	pf.BoolVarP(&verboseFlag, "verbose", "v", false, "Verbose output")
	pf.BoolVar(&jsonFlag, "json", false, "Structured JSON output")

	f := rootCmd.Flags()
	f.StringVarP(&listFlag, "list", "l", "", "Path to device list file, one hostname/IP per line")
	f.StringSliceVarP(&emailFlag, "email", "e", nil, "Email delivery from/to address pair")
	f.StringVarP(&smtpFlag, "smtp", "s", "", "SMTP relay host (required with -e)")

	rootCmd.AddCommand(portsCmd, settingsCmd, versionCmd)
}
