package config

import (
	"camp_registration/model"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
)

type Settings struct {
	Port        string        `env:"APP_PORT" envDefault:"8002"`
	CorsOrigins string        `env:"CORS_ORIGINS" envDefault:"http://localhost:5173"`
	JWTSecret   string        `env:"JWT_SECRET,required"`
	AccessTTL   time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"24h"`

	APIURL     string        `env:"API_URL" envDefault:"http://localhost:8000/api"`
	APITimeout time.Duration `env:"API_TIMEOUT" envDefault:"15s"`

	// Credentials used when a payment callback arrives without a session.
	PublicAgentUsername string `env:"PUBLIC_AGENT_USERNAME"`
	PublicAgentPassword string `env:"PUBLIC_AGENT_PASSWORD"`

	RedisURL   string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	DraftTTL   time.Duration `env:"DRAFT_TTL" envDefault:"720h"`
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	MailMode     string `env:"MAIL_MODE" envDefault:"log"`
	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SMTPFrom     string `env:"SMTP_FROM" envDefault:"noreply@rccgregion63.org"`
	AdminEmail   string `env:"ADMIN_EMAIL"`

	CloudinaryCloudName string `env:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `env:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `env:"CLOUDINARY_API_SECRET"`
	CloudinaryFolder    string `env:"CLOUDINARY_FOLDER" envDefault:"camp/proofs"`

	Timezone     string        `env:"TIMEZONE" envDefault:"Africa/Lagos"`
	DigestHour   uint          `env:"DIGEST_HOUR" envDefault:"8"`
	BoardSweep   string        `env:"BOARD_SWEEP_SPEC" envDefault:"*/5 * * * *"`
	BoardIdleTTL time.Duration `env:"BOARD_IDLE_TTL" envDefault:"1h"`

	RegistrationFee string `env:"REGISTRATION_FEE" envDefault:"3000"`
	fee             decimal.Decimal

	EventTitle        string `env:"EVENT_TITLE" envDefault:"THE PRICELESS"`
	EventDate         string `env:"EVENT_DATE" envDefault:"22nd - 25th December, 2025"`
	EventLocation     string `env:"EVENT_LOCATION" envDefault:"@GLORY ARENA, REDEMPTION CITY"`
	EventAddress      string `env:"EVENT_ADDRESS" envDefault:"KM 46, LAGOS-IBADAN EXPRESSWAY, OGUN STATE"`
	EventContactEmail string `env:"EVENT_CONTACT_EMAIL"`
	EventTeam         string `env:"EVENT_TEAM" envDefault:"RCCG Region 63 Junior Church Team"`
}

// Load reads Settings from the environment (and .env when present).
func Load() (Settings, error) {
	Config("APP_PORT")

	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	if _, err := cron.ParseStandard(s.BoardSweep); err != nil {
		return Settings{}, fmt.Errorf("BOARD_SWEEP_SPEC: %w", err)
	}
	fee, err := parseFee(s.RegistrationFee)
	if err != nil {
		return Settings{}, err
	}
	s.fee = fee
	if s.DigestHour > 23 {
		return Settings{}, fmt.Errorf("DIGEST_HOUR must be 0-23, got %d", s.DigestHour)
	}
	return s, nil
}

// Fee is the per-attendee registration fee parsed by Load.
func (s Settings) Fee() decimal.Decimal {
	return s.fee
}

func parseFee(raw string) (decimal.Decimal, error) {
	fee, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("REGISTRATION_FEE: %w", err)
	}
	if fee.IsNegative() {
		return decimal.Zero, fmt.Errorf("REGISTRATION_FEE must not be negative")
	}
	return fee, nil
}

func (s Settings) Location() *time.Location {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.FixedZone("WAT", 3600)
	}
	return loc
}

func (s Settings) Event() model.EventDetails {
	return model.EventDetails{
		Title:        s.EventTitle,
		Date:         s.EventDate,
		Location:     s.EventLocation,
		Address:      s.EventAddress,
		ContactEmail: s.EventContactEmail,
		Team:         s.EventTeam,
	}
}
