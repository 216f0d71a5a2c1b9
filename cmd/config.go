package cmd

import "time"

type Config struct {
	HTTPPort            string
	HTTPRequestTimeout  time.Duration
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBSslMode           string
	JWTSecret           string
	JWTValidity         time.Duration
	PaymentAPIBaseURL   string
	PaymentAPISecretKey string
	PaymentAPITimeout   time.Duration
	StuckParcelMaxAge   time.Duration
}
