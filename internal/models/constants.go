package models

// Categories produced outside the rule table.
const (
	// CategoryPix is returned whenever the description mentions a Pix transfer.
	CategoryPix = "Pix"
	// CategoryOthers is the catch-all when no rule matches.
	CategoryOthers = "Outros"
)

// Categories of the built-in rule table.
const (
	CategoryTransport = "Transporte"
	CategoryFood      = "Alimentação"
	CategoryShopping  = "Compras"
	CategoryHealth    = "Saúde"
	CategoryHousing   = "Moradia"
	CategoryLeisure   = "Lazer"
	CategoryEducation = "Educação"
)

// DefaultPixDescription is the clean description of a Pix transfer whose
// counterparty could not be recovered.
const DefaultPixDescription = "Transação Pix"

// File permissions
const (
	PermissionOutputFile = 0644
	PermissionDirectory  = 0750
)
