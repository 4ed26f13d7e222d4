package contextkeys

// Custom key type to avoid collisions with other context values
type contextKey string

// DBContextKey is the key under which the *gorm.DB handle lives in the context
const DBContextKey = contextKey("db")
