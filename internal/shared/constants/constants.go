package constants

const (
	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserUUID  = "user_uuid"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"
)

// Table names
const (
	TableUsers            = "users"
	TableMailTokens       = "mail_tokens"
	TableWallets          = "wallets"
	TableOrganizations    = "organizations"
	TableProjects         = "projects"
	TableDocuments        = "documents"
	TableDeposits         = "deposits"
	TableTransactionInfos = "transaction_infos"
)
