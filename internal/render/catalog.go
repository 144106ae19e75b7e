package render

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

// Catalog keys. English text doubles as the key. Years are passed as
// strings so they are not digit-grouped.
const (
	TextIncome          = "Income"
	TextExpense         = "Expense"
	TextBalance         = "Balance"
	TextNetBalance      = "Net balance"
	TextYearlyIncome    = "Yearly income"
	TextYearlyExpense   = "Yearly expense"
	TextOwed            = "Owed to you"
	TextDebt            = "You owe"
	TextPending         = "Pending"
	TextPaid            = "Paid"
	TextNoDescription   = "No description"
	TextNoTransactions  = "No transactions found"
	TextNoDebts         = "No debts found"
	TextNoData          = "No data"
	TextNoReportData    = "No transactions in the selected period"
	TextEmptyLedger     = "No transactions recorded yet"
	TextReportFailed    = "Something went wrong while building the report"
	TextComingSoon      = "Export is coming soon"
	TextMonthlyReport   = "Monthly report - %s %s"
	TextCategoryReport  = "Category report - %s"
	TextAllMonths       = "all months"
	TextYearlyReport    = "Yearly report - %s"
	TextAllYears        = "Yearly report - all years"
	TextDeleteConfirm   = "Delete this record?"
	TextSaved           = "Saved"
	TextImported        = "Imported %d transactions"
	TextCategoryHeading = "Category"
	TextAmountHeading   = "Amount"
	TextShareHeading    = "Share"
)

var arabic = map[string]string{
	TextIncome:          "المدخول",
	TextExpense:         "المصروف",
	TextBalance:         "الرصيد",
	TextNetBalance:      "صافي الرصيد",
	TextYearlyIncome:    "المدخول السنوي",
	TextYearlyExpense:   "المصروف السنوي",
	TextOwed:            "مستحق لك",
	TextDebt:            "عليك",
	TextPending:         "معلق",
	TextPaid:            "مدفوع",
	TextNoDescription:   "بدون وصف",
	TextNoTransactions:  "لا توجد معاملات",
	TextNoDebts:         "لا توجد ديون",
	TextNoData:          "لا توجد بيانات",
	TextNoReportData:    "لا توجد معاملات في الفترة المحددة",
	TextEmptyLedger:     "لا توجد معاملات مسجلة بعد",
	TextReportFailed:    "حدث خطأ أثناء إنشاء التقرير",
	TextComingSoon:      "ميزة التصدير قادمة قريباً",
	TextMonthlyReport:   "التقرير الشهري - %s %s",
	TextCategoryReport:  "تقرير الفئات - %s",
	TextAllMonths:       "كل الشهور",
	TextYearlyReport:    "التقرير السنوي - %s",
	TextAllYears:        "التقرير السنوي - كل السنوات",
	TextDeleteConfirm:   "هل أنت متأكد من الحذف؟",
	TextSaved:           "تم الحفظ",
	TextImported:        "تم استيراد %d معاملة",
	TextCategoryHeading: "الفئة",
	TextAmountHeading:   "المبلغ",
	TextShareHeading:    "النسبة",
}

var texts = func() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))

	for key, msg := range arabic {
		_ = b.SetString(arabicEgypt, key, msg)
		_ = b.SetString(language.English, key, key)
	}

	return b
}()
