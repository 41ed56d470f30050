package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mikepitagno/cisco-duplex-check/pkg/cli"
	"github.com/mikepitagno/cisco-duplex-check/pkg/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage persistent settings",
	Long: `Manage persistent settings stored in ~/.duplexcheck/settings.json.

Settings provide defaults for flags:
  - community:   SNMP community string (-c default)
  - port:        SNMP port (-p default)
  - smtp:        SMTP relay host (-s default)
  - cache_dir:   Interface-inventory cache directory (--cache-dir default)

Examples:
  duplexcheck settings show
  duplexcheck settings set community netops-ro
  duplexcheck settings set smtp relay.example.com
  duplexcheck settings clear`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settings.Load()
		if err != nil {
			return fmt.Errorf("loading settings: %w", err)
		}

		fmt.Printf("Settings file: %s\n\n", settings.DefaultSettingsPath())

		t := cli.NewTable("SETTING", "VALUE")

		printSetting := func(name, value string) {
			if value == "" {
				value = "(not set)"
			}
			t.Row(name, value)
		}

		printSetting("community", s.Community)
		if s.Port != 0 {
			printSetting("port", strconv.Itoa(int(s.Port)))
		} else {
			printSetting("port", "")
		}
		printSetting("smtp", s.SMTPServer)
		printSetting("cache_dir", s.CacheDir)

		t.Flush()
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <setting> <value>",
	Short: "Set a setting value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		setting := args[0]
		value := args[1]

		s, err := settings.Load()
		if err != nil {
			s = &settings.Settings{}
		}

		switch setting {
		case "community":
			s.Community = value
			fmt.Println("Default community set")
		case "port":
			p, err := strconv.ParseUint(value, 10, 16)
			if err != nil {
				return fmt.Errorf("invalid port %q: %w", value, err)
			}
			s.Port = uint16(p)
			fmt.Printf("Default port set to: %d\n", p)
		case "smtp", "smtp_server":
			s.SMTPServer = value
			fmt.Printf("SMTP relay set to: %s\n", value)
		case "cache_dir":
			s.CacheDir = value
			fmt.Printf("Cache directory set to: %s\n", value)
		default:
			return fmt.Errorf("unknown setting: %s (valid: community, port, smtp, cache_dir)", setting)
		}

		if err := s.Save(); err != nil {
			return fmt.Errorf("saving settings: %w", err)
		}

		return nil
	},
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <setting>",
	Short: "Get a setting value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settings.Load()
		if err != nil {
			return fmt.Errorf("loading settings: %w", err)
		}

		switch args[0] {
		case "community":
			fmt.Println(s.Community)
		case "port":
			if s.Port != 0 {
				fmt.Println(s.Port)
			}
		case "smtp", "smtp_server":
			fmt.Println(s.SMTPServer)
		case "cache_dir":
			fmt.Println(s.CacheDir)
		default:
			return fmt.Errorf("unknown setting: %s (valid: community, port, smtp, cache_dir)", args[0])
		}
		return nil
	},
}

var settingsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear all settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settings.Load()
		if err != nil {
			s = &settings.Settings{}
		}
		s.Clear()
		if err := s.Save(); err != nil {
			return fmt.Errorf("saving settings: %w", err)
		}
		fmt.Println("Settings cleared")
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd, settingsGetCmd, settingsClearCmd)
}
