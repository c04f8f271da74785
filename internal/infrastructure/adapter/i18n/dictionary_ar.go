package i18n

var arabic = Dictionary{
	// Layout
	"dashboard":    "لوحة التحكم",
	"transactions": "المعاملات",
	"logs":         "سجلات المعاملات",
	"logout":       "تسجيل الخروج",
	"english":      "English",
	"arabic":       "العربية",
	"login":        "تسجيل الدخول",

	// Dashboard
	"studentDashboard":   "بطاقتي",
	"dashboardTitle":     "لوحة التحكم",
	"totalUsers":         "إجمالي المستخدمين",
	"totalTransactions":  "إجمالي المعاملات",
	"totalCredit":        "إجمالي الإيداعات",
	"totalDebit":         "إجمالي السحوبات",
	"weeklySummary":      "ملخص المعاملات الأسبوعي",
	"quickStats":         "إحصائيات سريعة",
	"balanceSystem":      "الرصيد في النظام",
	"transactionsToday":  "معاملات اليوم",
	"recentTransactions": "المعاملات الأخيرة",

	// Users
	"users":               "المستخدمين",
	"userManagement":      "إدارة المستخدمين",
	"addUser":             "إضافة مستخدم",
	"search":              "بحث",
	"id":                  "معرف",
	"name":                "الاسم",
	"matricNumber":        "رقم القيد",
	"cardNumber":          "رقم البطاقة",
	"balance":             "الرصيد",
	"createNewUser":       "إنشاء مستخدم جديد",
	"fullName":            "الاسم الكامل",
	"password":            "كلمة المرور",
	"passwordNote":        "ملاحظة: افتراضيًا، ستكون كلمة المرور هي نفس رقم القيد إذا تركت فارغة",
	"initialBalance":      "الرصيد الأولي (ليرة سورية)",
	"validationError":     "خطأ في التحقق",
	"pleaseFillAllFields": "يرجى ملء جميع الحقول المطلوبة",
	"userCreatedSuccess":  "تم إنشاء المستخدم بنجاح",
	"failedToCreateUser":  "فشل في إنشاء المستخدم",
	"failedToLoadUsers":   "فشل في تحميل المستخدمين",
	"noUsersFound":        "لم يتم العثور على مستخدمين",
	"noUsersMatchSearch":  "لا يوجد مستخدمين مطابقين للبحث",

	// Transactions
	"transactionsTitle":          "المعاملات",
	"credit":                     "إيداع",
	"debit":                      "سحب",
	"type":                       "النوع",
	"amount":                     "المبلغ",
	"date":                       "التاريخ",
	"manualTransaction":          "معاملة يدوية",
	"purchaseProduct":            "شراء منتج",
	"selectUser":                 "اختر مستخدم",
	"selectProduct":              "اختر منتج",
	"availableProducts":          "المنتجات المتاحة",
	"currentBalance":             "الرصيد الحالي",
	"insufficientBalance":        "رصيد غير كافٍ للسحب",
	"amountGreaterThanZero":      "يجب أن يكون المبلغ أكبر من الصفر",
	"pleaseSelectUser":           "الرجاء اختيار مستخدم",
	"transactionSuccess":         "تمت بنجاح",
	"failedToProcessTransaction": "فشل في إجراء المعاملة",

	// Logs
	"transactionLogs":     "سجلات المعاملات",
	"user":                "المستخدم",
	"timestamp":           "الوقت",
	"searchByUser":        "البحث عن طريق المستخدم، رقم القيد، رقم البطاقة، أو نوع المعاملة...",
	"transactionHistory":  "سجل المعاملات",
	"previousBalance":     "الرصيد السابق",
	"noTransactionsFound": "لم يتم العثور على معاملات",
	"noTransactionsMatch": "لا توجد معاملات مطابقة للبحث",

	// Notifications
	"loginFailed":        "اسم المستخدم أو كلمة المرور غير صحيحة",
	"sessionExpired":     "انتهت صلاحية الجلسة، يرجى تسجيل الدخول مرة أخرى",
	"serviceUnavailable": "خدمة التحقق غير متاحة",
	"notFound":           "غير موجود",
	"duplicateUser":      "يوجد مستخدم بنفس رقم القيد أو رقم البطاقة",
	"tooManyRequests":    "محاولات كثيرة، يرجى الانتظار والمحاولة مرة أخرى",
	"unexpectedError":    "حدث خطأ ما",
	"languageChanged":    "تم تحديث اللغة",
}
