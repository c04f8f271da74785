package i18n

var english = Dictionary{
	// Layout
	"dashboard":    "Dashboard",
	"transactions": "Transactions",
	"logs":         "Transaction Logs",
	"logout":       "Logout",
	"english":      "English",
	"arabic":       "Arabic",
	"login":        "Login",

	// Dashboard
	"dashboardTitle":     "Dashboard",
	"studentDashboard":   "My Card",
	"totalUsers":         "Total Users",
	"totalTransactions":  "Total Transactions",
	"totalCredit":        "Total Credit",
	"totalDebit":         "Total Debit",
	"weeklySummary":      "Weekly Transaction Summary",
	"quickStats":         "Quick Stats",
	"balanceSystem":      "Balance in System",
	"transactionsToday":  "Transactions Today",
	"recentTransactions": "Recent Transactions",

	// Users
	"users":               "Users",
	"userManagement":      "User Management",
	"addUser":             "Add User",
	"search":              "Search",
	"id":                  "ID",
	"name":                "Name",
	"matricNumber":        "Matric Number",
	"cardNumber":          "Card Number",
	"balance":             "Balance",
	"createNewUser":       "Create New User",
	"fullName":            "Full Name",
	"password":            "Password",
	"passwordNote":        "Note: By default, password will be same as matric number if left empty",
	"initialBalance":      "Initial Balance (SYP)",
	"validationError":     "Validation Error",
	"pleaseFillAllFields": "Please fill in all required fields",
	"userCreatedSuccess":  "User created successfully",
	"failedToCreateUser":  "Failed to create user",
	"failedToLoadUsers":   "Failed to load users",
	"noUsersFound":        "No users found",
	"noUsersMatchSearch":  "No users match your search",

	// Transactions
	"transactionsTitle":          "Transactions",
	"credit":                     "Credit",
	"debit":                      "Debit",
	"type":                       "Type",
	"amount":                     "Amount",
	"date":                       "Date",
	"manualTransaction":          "Manual Transaction",
	"purchaseProduct":            "Purchase Product",
	"selectUser":                 "Select User",
	"selectProduct":              "Select Product",
	"availableProducts":          "Available Products",
	"currentBalance":             "Current Balance",
	"insufficientBalance":        "Insufficient balance for debit",
	"amountGreaterThanZero":      "Amount must be greater than zero",
	"pleaseSelectUser":           "Please select a user",
	"transactionSuccess":         "Success",
	"failedToProcessTransaction": "Failed to process transaction",

	// Logs
	"transactionLogs":     "Transaction Logs",
	"user":                "User",
	"timestamp":           "Timestamp",
	"searchByUser":        "Search by user, matric number, card number, or transaction type...",
	"transactionHistory":  "Transaction History",
	"previousBalance":     "Previous Balance",
	"noTransactionsFound": "No transactions found",
	"noTransactionsMatch": "No transactions match your search",

	// Notifications
	"loginFailed":        "Invalid username or password",
	"sessionExpired":     "Your session has expired, please log in again",
	"serviceUnavailable": "Verification service is unreachable",
	"notFound":           "Not found",
	"duplicateUser":      "A user with this matric or card number already exists",
	"tooManyRequests":    "Too many attempts, please wait and try again",
	"unexpectedError":    "Something went wrong",
	"languageChanged":    "Language updated",
}
