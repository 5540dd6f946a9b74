package email

import "fmt"

// Mail templates follow the SkillHunt house style: one card-like div, brand
// color #27428E, signed off by the SkillHunt team.

// RegistrationOTPMail builds the subject and body for a registration
// challenge mail.
func RegistrationOTPMail(displayName, code string) (subject, body string) {
	subject = "Your OTP for SkillHunt Registration"
	body = fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: auto; padding: 20px; border: 1px solid #ddd; border-radius: 8px; background-color: #f9f9f9;">
			<h2 style="color: #27428E;">SkillHunt Registration OTP</h2>
			<p>Hello <strong>%s</strong>,</p>
			<p>Thank you for initiating your registration on <strong>SkillHunt</strong>.</p>
			<p>Your One-Time Password (OTP) is:</p>
			<div style="font-size: 24px; font-weight: bold; color: #27428E; margin: 20px 0;">%s</div>
			<p>Please use this OTP to continue your registration. It is valid for <strong>2 minutes</strong>.</p>
			<p>If you did not request this, you can ignore this email.</p>
			<br/>
			<p>Regards,</p>
			<p><strong>SkillHunt Team</strong></p>
		</div>
	`, displayName, code)
	return subject, body
}

// RegistrationConfirmationMail builds the mail sent once a profile is
// completed and the first credential has been issued.
func RegistrationConfirmationMail(displayName, registeredEmail string) (subject, body string) {
	subject = "SkillHunt Registration Successful"
	body = fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: auto; padding: 20px; border: 1px solid #ddd; border-radius: 8px; background-color: #f9f9f9;">
			<h2 style="color: #27428E;">Welcome to SkillHunt!</h2>
			<p>Hi <strong>%s</strong>,</p>
			<p>Your registration has been <strong>successfully completed</strong>.</p>
			<h3 style="color: #27428E;">Login Credentials</h3>
			<p><strong>Registered Email:</strong> %s</p>
			<p><em>No need to memorize a password.</em><br/>
			Each time you log in, a fresh password is sent to your registered email address.</p>
			<br/>
			<p>Regards,</p>
			<p><strong>SkillHunt Team</strong></p>
		</div>
	`, displayName, registeredEmail)
	return subject, body
}

// LoginPasswordMail builds the mail carrying a freshly issued one-time login
// password. The plaintext secret only ever travels through this mail.
func LoginPasswordMail(displayName, tempPassword string) (subject, body string) {
	subject = "Your SkillHunt Login Password"
	body = fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: auto; padding: 20px; border: 1px solid #ddd; border-radius: 8px; background-color: #f9f9f9;">
			<h2 style="color: #27428E;">SkillHunt Login Access</h2>
			<p>Hi <strong>%s</strong>,</p>
			<p>You can log in using your <strong>registered email ID</strong>.</p>
			<p><strong>Your temporary login password is:</strong></p>
			<div style="font-size: 24px; font-weight: bold; color: #27428E; margin: 20px 0;">%s</div>
			<p><strong>No need to remember this password.</strong> For your security, a fresh
			login password is sent to your registered email every time you log in.</p>
			<p>If you did not try to log in, please ignore this message or contact support.</p>
			<br/>
			<p>Regards,</p>
			<p><strong>SkillHunt Team</strong></p>
		</div>
	`, displayName, tempPassword)
	return subject, body
}
