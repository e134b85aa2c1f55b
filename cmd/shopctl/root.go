package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nivgold/shopping-list/pkg/client"
)

var rootCmd = &cobra.Command{
	Use:           "shopctl",
	Short:         "Shopping-list client",
	Long:          "shopctl manages a local shopping cart and talks to the shopping-list API.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("api-url", "", "base URL of the shopping-list API")
	_ = viper.BindPFlag("api_url", rootCmd.PersistentFlags().Lookup("api-url"))

	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(ordersCmd)
	rootCmd.AddCommand(cartCmd)
}

func initConfig() {
	home, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigName(".shopctl")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("SHOPCTL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("api_url", "http://localhost:5000/api")
	if home != "" {
		viper.SetDefault("cart_path", filepath.Join(home, ".shopctl", "cart.json"))
	} else {
		viper.SetDefault("cart_path", "cart.json")
	}

	// Config file is optional.
	_ = viper.ReadInConfig()
}

func apiClient() *client.Client {
	return client.New(viper.GetString("api_url"), nil)
}
