package contextkeys

type contextKey string

const LocaleKey contextKey = "locale"
