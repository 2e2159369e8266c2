package env

// Placeholders lists every template placeholder in the order used for the example YAML file.
var Placeholders = []string{
	"WebsiteURL",
	"Branch",
	"DBServer",
	"DBName",
	"DBUser",
	"DBPassword",
	"BasicAuthUser",
	"BasicAuthPassword",
	"AdminUser",
	"AdminPassword",
	"FIAPingURL",
	"SessionKey",
	"SendAllEmailsTo",
	"MFASecretKey",
	"BYPASS_MFA",
}

// EnvKeyPlaceholder links an env file key to the placeholder that fills it.
type EnvKeyPlaceholder struct {
	EnvKey      string
	Placeholder string
}

// EnvKeyTable maps env file keys to template placeholders.
var EnvKeyTable = []EnvKeyPlaceholder{
	{"SS_BASE_URL", "WebsiteURL"},
	{"SS_DATABASE_SERVER", "DBServer"},
	{"SS_DATABASE_NAME", "DBName"},
	{"SS_DATABASE_USERNAME", "DBUser"},
	{"SS_DATABASE_PASSWORD", "DBPassword"},
	{"SS_BASIC_AUTH_USER", "BasicAuthUser"},
	{"SS_BASIC_AUTH_PASSWORD", "BasicAuthPassword"},
	{"SS_DEFAULT_ADMIN_USERNAME", "AdminUser"},
	{"SS_DEFAULT_ADMIN_PASSWORD", "AdminPassword"},
	{"FIA_RELEASE_PING_URL", "FIAPingURL"},
	{"SS_RELEASE_BRANCH", "Branch"},
	{"SS_SESSION_KEY", "SessionKey"},
	{"SS_MFA_SECRET_KEY", "MFASecretKey"},
	{"SS_SEND_ALL_EMAILS_TO", "SendAllEmailsTo"},
	{"BYPASS_MFA", "BYPASS_MFA"},
}

// PlaceholderFor returns the placeholder that fills envKey.
func PlaceholderFor(envKey string) (string, bool) {
	for _, e := range EnvKeyTable {
		if e.EnvKey == envKey {
			return e.Placeholder, true
		}
	}
	return "", false
}

// EnvKeyFor returns the env file key filled by placeholder.
func EnvKeyFor(placeholder string) (string, bool) {
	for _, e := range EnvKeyTable {
		if e.Placeholder == placeholder {
			return e.EnvKey, true
		}
	}
	return "", false
}

func isPlaceholder(name string) bool {
	for _, p := range Placeholders {
		if p == name {
			return true
		}
	}
	return false
}

// Template is the layout of every generated .env file.
const Template = `
# Basics
SS_BASE_URL="$WebsiteURL"
SS_ENVIRONMENT_TYPE="test"
SS_HOSTED_WITH_SITEHOST=true
# SS_ALLOWED_HOSTS="add your domain here, e.g. www.mydomain.com"

# Paths
TEMP_PATH="/container/application/tmp"

# DB
SS_DATABASE_SERVER="$DBServer"
SS_DATABASE_NAME="$DBName"
SS_DATABASE_USERNAME="$DBUser"
SS_DATABASE_PASSWORD="$DBPassword"
# mysqldump $DBName -u $DBUser -p$DBPassword -h $DBServer  --column-statistics=0 > $DBName.sql
# mysql     $DBName -u $DBUser -p$DBPassword -h $DBServer  < $DBName.sql
# mysql     $DBName -u $DBUser -p$DBPassword -h $DBServer  -A $DBName.sql

# Logins
SS_BASIC_AUTH_USER="$BasicAuthUser"
SS_BASIC_AUTH_PASSWORD="$BasicAuthPassword"
SS_USE_BASIC_AUTH=false
SS_DEFAULT_ADMIN_USERNAME="$AdminUser"
SS_DEFAULT_ADMIN_PASSWORD="$AdminPassword"
BYPASS_MFA=$BYPASS_MFA


# Debug and Development
# SS_ERROR_LOG="./silverstripe.log"
# SS_SERVER_FOR_EXAMPLE_DATA="great for dev environments"
# SS_ALLOW_SMOKE_TEST=true

# Release
SS_RELEASE_BRANCH="$Branch"
FIA_RELEASE_PING_URL="$FIAPingURL"

# Secrets
SS_MFA_SECRET_KEY="$MFASecretKey"
SS_SESSION_KEY="$SessionKey"

# Email
SS_SEND_ALL_EMAILS_TO="$SendAllEmailsTo"

# Branding
SS_WHITE_LABEL_ONLY=false
`
