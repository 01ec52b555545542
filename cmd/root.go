package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/duit/internal/app"
	"github.com/hance08/duit/internal/config"
	"github.com/hance08/duit/internal/errhandler"
	"github.com/hance08/duit/internal/model"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     *config.Config
)

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	if err := initConfig(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	application, cleanup, err := app.NewApp(cfg, migrations)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	defer cleanup()

	rootCmd := &cobra.Command{
		Use:           "duit",
		Short:         "duit is a CLI personal money ledger",
		Long:          `duit records income, expense and saving transactions, tracks monthly saving goals and gives a quick read on your financial health.`,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")

	rootCmd.AddCommand(NewAddCmd(application.Service))
	rootCmd.AddCommand(NewListCmd(application.Service))
	rootCmd.AddCommand(NewEditCmd(application.Service))
	rootCmd.AddCommand(NewDeleteCmd(application.Service))
	rootCmd.AddCommand(NewSummaryCmd(application.Service))
	rootCmd.AddCommand(NewGoalCmd(application.Service))
	rootCmd.AddCommand(NewExportCmd(application.Service))
	rootCmd.AddCommand(NewChartCmd(application.Service))
	rootCmd.AddCommand(NewResetCmd(application.Service))

	rootCmd.SilenceErrors = true
	if err := rootCmd.Execute(); err != nil {
		errhandler.HandleError(err)
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

	viper.SetEnvPrefix("DUIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := createDefaultConfig(); err != nil {
		return fmt.Errorf("failed to ensure config file: %w", err)
	}

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
		return filepath.Join(home, ".duit"), nil
	}

	return filepath.Join(configDir, "duit"), nil
}

func createDefaultConfig() error {
	appDir, err := getAppDataDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// monthOrDefault resolves the --month flag: empty falls back to the
// configured month or the current calendar month, "all" disables filtering.
func monthOrDefault(flagValue string) string {
	if strings.EqualFold(flagValue, "all") {
		return ""
	}
	if flagValue != "" {
		return flagValue
	}
	if cfg != nil && cfg.Defaults.Month != "" {
		return cfg.Defaults.Month
	}
	return model.CurrentMonthKey()
}

// monthLabel is the display form of a month key ("" = all months).
func monthLabel(monthKey string) string {
	if monthKey == "" {
		return "All months"
	}
	return monthKey
}
