package models

// ✅ DynamoDB tables
const (
	ContactsTable = "Contacts" // PK: id
	SwipesTable   = "Swipes"   // PK: contactId
)

// ✅ Storage backends
const (
	BackendSQLite = "sqlite"
	BackendDynamo = "dynamodb"
	BackendMemory = "memory"
)

// ✅ Realtime
const (
	SwipeRoom  = "swipes"
	SwipeEvent = "swipe"
)
