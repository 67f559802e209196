package entity

// Role name constants carried in JWT claims. Token issuance is handled by
// the identity provider; this API only gates routes on the role claim.
const (
	RoleAdmin        = "Admin"
	RoleHR           = "HR"
	RoleReceptionist = "Receptionist"
	RoleDoctor       = "Doctor"
	RoleNurse        = "Nurse"
	RolePatient      = "Patient"
)
