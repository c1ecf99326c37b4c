// Package config đọc cấu hình ứng dụng từ biến môi trường / file .env
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Supabase       Supabase       `mapstructure:",squash"`
	DatasetRefresh DatasetRefresh `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Supabase là cấu hình kết nối tới kho dữ liệu và dịch vụ auth bên ngoài
type Supabase struct {
	URL       string `mapstructure:"supabase_url"`
	APIKey    string `mapstructure:"supabase_api_key"`    // service key, dùng cho kho dữ liệu
	JWTSecret string `mapstructure:"supabase_jwt_secret"` // bí mật HS256 để kiểm tra access token
}

// DatasetRefresh là cấu hình cron tải lại toàn bộ dữ liệu (mặc định tắt)
type DatasetRefresh struct {
	CronSchedule string `mapstructure:"dataset_refresh_cron"`
	Enabled      bool   `mapstructure:"dataset_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("SUPABASE_URL", "http://localhost:54321")
	viper.SetDefault("SUPABASE_API_KEY", "your_service_key")
	viper.SetDefault("SUPABASE_JWT_SECRET", "your_jwt_secret")

	viper.SetDefault("DATASET_REFRESH_CRON", "0 * * * *") // mỗi giờ, nếu được bật
	viper.SetDefault("DATASET_REFRESH_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Dùng biến môi trường do godotenv nạp (viper không đọc được .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	return config, nil
}

// loadEnvFile thử nạp file .env từ vài vị trí quen thuộc
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Không lấy được thư mục hiện tại: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Đã nạp file .env từ: ", location)
			return
		}
	}

	logrus.Info("Không tìm thấy file .env, dùng biến môi trường hệ thống")
}
