package auth

import (
	"errors"
	"os"
	"time"

	"stockroom.io/application/constants"
	"stockroom.io/entities"
	"stockroom.io/infrastructure/logger"
	"github.com/golang-jwt/jwt"
)

// GenerateTokenSet mints the access, identity and refresh tokens for a user
// in one operation so callers can never hand out a partial set.
func GenerateTokenSet(user *entities.User) (*TokenSet, error) {
	now := time.Now()

	accessToken, err := generateAuthToken(ClaimsData{
		UserID:    user.ID,
		TokenType: AccessToken,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(time.Duration(constants.ACCESS_TOKEN_TTL) * time.Second).Unix(),
	})
	if err != nil {
		return nil, err
	}
	idToken, err := generateAuthToken(ClaimsData{
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Groups:    user.Groups,
		UserType:  user.UserType,
		TokenType: IDToken,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(time.Duration(constants.ID_TOKEN_TTL) * time.Second).Unix(),
	})
	if err != nil {
		return nil, err
	}
	refreshToken, err := generateAuthToken(ClaimsData{
		UserID:    user.ID,
		TokenType: RefreshToken,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(time.Duration(constants.REFRESH_TOKEN_TTL) * time.Second).Unix(),
	})
	if err != nil {
		return nil, err
	}

	return &TokenSet{
		AccessToken:  *accessToken,
		IDToken:      *idToken,
		RefreshToken: *refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(constants.ACCESS_TOKEN_TTL),
	}, nil
}

func generateAuthToken(claimsData ClaimsData) (*string, error) {
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss":       os.Getenv("JWT_ISSUER"),
		"userID":    claimsData.UserID,
		"exp":       claimsData.ExpiresAt,
		"iat":       claimsData.IssuedAt,
		"email":     claimsData.Email,
		"name":      claimsData.Name,
		"groups":    claimsData.Groups,
		"userType":  claimsData.UserType,
		"tokenType": string(claimsData.TokenType),
	}).SignedString([]byte(os.Getenv("JWT_SIGNING_KEY")))
	if err != nil {
		return nil, err
	}
	return &tokenString, nil
}

// DecodeAuthToken verifies the signature, validity window, issuer and token
// type of a bearer token and returns its claims.
func DecodeAuthToken(tokenString string, tokenType TokenType) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SIGNING_KEY")), nil
	})
	if err != nil {
		if err == jwt.ErrSignatureInvalid {
			return nil, errors.New("invalid token signature used")
		}
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token used")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	if claims["iss"] != os.Getenv("JWT_ISSUER") {
		logger.Warning("attempt to access account with tampered jwt", logger.LoggerOptions{
			Key:  "token claims",
			Data: claims,
		})
		return nil, errors.New("unauthorised access")
	}
	if claims["tokenType"] != string(tokenType) {
		return nil, errors.New("unexpected token type used")
	}
	return claims, nil
}
