package mailer

import "fmt"

// WelcomeEmail builds the registration welcome message.
func WelcomeEmail(userName string) Email {
	htmlBody := fmt.Sprintf(`
		<div style="max-width: 600px; margin: auto; font-family: sans-serif; text-align: center;">
			<h2 style="color: #4CAF50;">Welcome to Brainbin, %s!</h2>
			<p>Your account has been created and your notes are waiting.</p>
			<p>Capture ideas, tag them, and drag them through To Do, In Progress, and Done.</p>
			<p style="font-size: 12px; color: #888;">&copy; 2025 Brainbin Inc. All rights reserved.</p>
		</div>
	`, userName)

	return Email{
		Subject:  "Welcome to Brainbin",
		Body:     fmt.Sprintf("Welcome to Brainbin, %s! Your account has been created.", userName),
		HTMLBody: htmlBody,
	}
}

// VerifyOTPEmail builds the account verification message carrying the OTP.
func VerifyOTPEmail(otp string) Email {
	return Email{
		Subject: "Account Verification OTP",
		Body:    fmt.Sprintf("Your OTP is %s. Verify your account using this OTP.", otp),
	}
}

// ResetOTPEmail builds the password reset message carrying the OTP.
func ResetOTPEmail(userName, otp string) Email {
	if userName == "" {
		userName = "User"
	}

	htmlBody := fmt.Sprintf(`
		<div style="max-width: 600px; margin: auto; font-family: sans-serif; text-align: center;">
			<h2 style="color: #4A90E2;">Hello %s,</h2>
			<p>You requested to reset the password for your Brainbin account.</p>
			<p><strong>Your One-Time Password (OTP) is:</strong></p>
			<p style="font-size: 32px; font-weight: bold; letter-spacing: 6px;">%s</p>
			<p>If you did not request this, you can safely ignore this email.</p>
			<p style="font-size: 12px; color: #888;">&copy; 2025 Brainbin Inc. All rights reserved.</p>
		</div>
	`, userName, otp)

	return Email{
		Subject:  "Password Reset OTP",
		Body:     fmt.Sprintf("Your Brainbin password reset OTP is %s.", otp),
		HTMLBody: htmlBody,
	}
}
