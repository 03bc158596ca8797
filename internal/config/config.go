package config

import (
	"fmt"
	"os"
	"strconv"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	PostgresUser     string // DBユーザー
	PostgresPassword string // DBパスワード
	PostgresDB       string // DB名
	PostgresHost     string // DBホスト（localhost）
	PostgresPort     int    // DBポート（5433）

	JWTSecret string // JWT署名シークレット

	GoEnv string // dev/prod
	FEURL string // フロントURL（CORSなどで使う）

	CompanyName    string // 店名（メッセージに使う）
	WhatsAppNumber string // 注文送信先（国番号つき、+なし）

	GCSBucket      string // アップロード先バケット
	GCSSignerEmail string // 署名用サービスアカウント
	GCSKeyPath     string // 秘密鍵PEMのパス

	CartStrictQuantityUpdate bool // trueなら存在しない行の数量変更を404にする
}

// Loadは環境変数
func Load() (Config, error) {
	pgPort, err := mustAtoi("POSTGRES_PORT")
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port: os.Getenv("PORT"),

		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),
		PostgresHost:     os.Getenv("POSTGRES_HOST"),
		PostgresPort:     pgPort,

		JWTSecret: os.Getenv("JWT_SECRET"),

		GoEnv: os.Getenv("GO_ENV"),
		FEURL: os.Getenv("FE_URL"),

		CompanyName:    getenv("COMPANY_NAME", "Industrial Supply"),
		WhatsAppNumber: os.Getenv("WHATSAPP_NUMBER"),

		GCSBucket:      os.Getenv("GCS_BUCKET"),
		GCSSignerEmail: os.Getenv("GCS_SIGNER_EMAIL"),
		GCSKeyPath:     os.Getenv("GCS_KEY_PATH"),

		CartStrictQuantityUpdate: os.Getenv("CART_STRICT_QUANTITY_UPDATE") == "true",
	}

	//必須チェック
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.PostgresUser == "" {
		return Config{}, fmt.Errorf("POSTGRES_USER is required")
	}
	if cfg.PostgresPassword == "" {
		return Config{}, fmt.Errorf("POSTGRES_PASSWORD is required")
	}
	if cfg.PostgresDB == "" {
		return Config{}, fmt.Errorf("POSTGRES_DB is required")
	}
	if cfg.PostgresHost == "" {
		return Config{}, fmt.Errorf("POSTGRES_HOST is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.GoEnv == "" {
		return Config{}, fmt.Errorf("GO_ENV is required")
	}
	if cfg.FEURL == "" {
		return Config{}, fmt.Errorf("FE_URL is required")
	}
	if cfg.WhatsAppNumber == "" {
		return Config{}, fmt.Errorf("WHATSAPP_NUMBER is required")
	}
	if cfg.GCSBucket == "" {
		return Config{}, fmt.Errorf("GCS_BUCKET is required")
	}
	if cfg.GCSSignerEmail == "" {
		return Config{}, fmt.Errorf("GCS_SIGNER_EMAIL is required")
	}
	if cfg.GCSKeyPath == "" {
		return Config{}, fmt.Errorf("GCS_KEY_PATH is required")
	}

	return cfg, nil
}

func mustAtoi(key string) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
