package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const REFRESH_TOKENS_COLLECTION = "refresh_tokens"

var refreshTokenModel *RefreshTokenModel

type RefreshToken struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	JTI           string             `bson:"jti"`
	FuncionarioID primitive.ObjectID `bson:"funcionario_id"`
	Revoked       bool               `bson:"revoked"`
	ExpiresAt     primitive.DateTime `bson:"expires_at"`
	CreatedAt     primitive.DateTime `bson:"created_at"`
}

type RefreshTokenModel struct {
	model
}

func NewRefreshTokenModel() Collection {
	if refreshTokenModel == nil {
		refreshTokenModel = &RefreshTokenModel{
			model{CollectionName: REFRESH_TOKENS_COLLECTION},
		}
	}
	return refreshTokenModel
}
