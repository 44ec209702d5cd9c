package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User represents a registered Brainbin account.
type User struct {
	ID                 bson.ObjectID `bson:"_id,omitempty"`
	Name               string        `bson:"name"`
	Email              string        `bson:"email"`
	PasswordHash       string        `bson:"password_hash"`
	Verified           bool          `bson:"verified"`
	VerifyOTP          string        `bson:"verify_otp"`
	VerifyOTPExpiresAt time.Time     `bson:"verify_otp_expires_at"`
	ResetOTP           string        `bson:"reset_otp"`
	ResetOTPExpiresAt  time.Time     `bson:"reset_otp_expires_at"`
	CreatedAt          time.Time     `bson:"created_at"`
	UpdatedAt          time.Time     `bson:"updated_at"`
}
