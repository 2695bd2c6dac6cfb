package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/prasetya/neraca/internal/config"
	"github.com/prasetya/neraca/internal/errhandler"
)

var (
	cfgFile string
	cfg     *config.Config
)

func Execute() {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	if err := initConfig(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:           "neraca",
		Short:         "neraca records bank transactions and builds financial statements",
		Long: `neraca is an interactive terminal tool for recording bank-style
double-entry transactions and producing a balance sheet, income
statement and cash flow statement for the session, on screen and as
an Excel workbook. All data lives in memory for one sitting.`,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewSession(cfg).Run()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")
	rootCmd.Flags().StringVar(&cfg.Entity.Name, "entity", cfg.Entity.Name, "entity (bank) name on the reports")
	rootCmd.Flags().StringVar(&cfg.Entity.Period, "period", cfg.Entity.Period, "reporting period label")
	rootCmd.Flags().StringVarP(&cfg.Report.OutputDir, "output", "o", cfg.Report.OutputDir, "directory for exported reports")

	if err := rootCmd.Execute(); err != nil {
		errhandler.HandleError(err)
		os.Exit(1)
	}
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := getAppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("NERACA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	cfg = config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	return nil
}

func getAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".neraca"), nil
	}

	return filepath.Join(configDir, "neraca"), nil
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
