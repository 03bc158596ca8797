package main

import (
	"log"
	"os"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/infra/upload"
	"app/internal/middleware"
	"app/internal/server"
	"app/internal/usecase"
	auth "app/internal/usecase/auth_usecase"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

//アクセストークン
func (i *jwtIssuer) Issue(userID string, email string, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"iat":   now.Unix(),
		"exp":   expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func main() {
	//.envはローカル用。なければ環境変数だけで動く。
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Cart{},
		&model.StoreConfig{},
	); err != nil {
		log.Fatal(err)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	configRepo := infraRepo.NewStoreConfigGormRepository(gormDB)

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}

	//bcrypt（会員登録：Hash / ログイン：Verify）
	hasher := auth.NewBcryptPasswordHasher(12)
	verifier := auth.NewBcryptPasswordVerifier()

	//JWT issuer
	issuer := &jwtIssuer{
		secret:    []byte(cfg.JWTSecret),
		accessTTL: time.Hour,
	}

	//GCS署名鍵
	pemKey, err := os.ReadFile(cfg.GCSKeyPath)
	if err != nil {
		log.Fatal(err)
	}
	signer := upload.NewGCSSigner(cfg.GCSBucket, cfg.GCSSignerEmail, pemKey)

	//Usecase生成
	registerUC := auth.NewRegisterUserUsecase(userRepo, hasher, idGen, clock)
	loginUC := auth.NewLoginUsecase(userRepo, verifier, issuer, clock)
	productUC := usecase.NewProductUsecase(productRepo, idGen, clock)
	cartUC := usecase.NewCartUsecase(cartRepo, productRepo, idGen, clock, cfg.CartStrictQuantityUpdate)
	configUC := usecase.NewStoreConfigUsecase(configRepo, idGen, clock)
	uploadUC := usecase.NewUploadUsecase(signer, clock)
	waUC := usecase.NewWhatsAppUsecase(cartRepo, productRepo, cfg.WhatsAppNumber, cfg.CompanyName)

	//Handler生成
	authMW := middleware.AuthJWT(cfg)
	handlers := server.Handlers{
		Auth:        handler.NewAuthHandler(registerUC, loginUC),
		Product:     handler.NewProductHandler(productUC, authMW),
		Cart:        handler.NewCartHandler(cartUC),
		StoreConfig: handler.NewStoreConfigHandler(configUC, authMW),
		Upload:      handler.NewUploadHandler(uploadUC, authMW),
		WhatsApp:    handler.NewWhatsAppHandler(waUC),
	}

	//Server起動
	if err := server.Start(cfg, handlers); err != nil {
		log.Fatal(err)
	}
}
