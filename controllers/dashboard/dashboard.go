package dashboardControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/AlexTarazonal/ecommerceSuplementos/models"
)

type timelineEntry struct {
	Kind  string `json:"kind"` // "order" or "user"
	ID    uint   `json:"id"`
	Date  string `json:"date"`
	Title string `json:"title"`
}

type topProduct struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
	Category string          `json:"category"`
	Sales    int             `json:"sales"`
}

type summary struct {
	RevenueToday   decimal.Decimal `json:"revenue_today"`
	RevenueMonth   decimal.Decimal `json:"revenue_month"`
	TotalUsers     int64           `json:"total_users"`
	ActiveUsers    int64           `json:"active_users_week"`
	MonthlySales   []float64       `json:"monthly_sales"`
	Buyers         int64           `json:"buyers"`
	NonBuyers      int64           `json:"non_buyers"`
	NewUsersWeek   int64           `json:"new_users_week"`
	AverageTicket  decimal.Decimal `json:"average_ticket"`
	ConversionRate int64           `json:"conversion_rate"`
	Timeline       []timelineEntry `json:"timeline"`
	TopProducts    []topProduct    `json:"top_products"`
}

// GET /api/dashboard/summary — cancelled orders are excluded from every
// revenue figure.
func GetSummaryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var s summary
		cancelled := models.OrderStatusCancelled

		if err := db.Raw(
			`SELECT COALESCE(SUM(total), 0) FROM orders
			 WHERE created_at::date = CURRENT_DATE AND status <> ?`, cancelled).
			Scan(&s.RevenueToday).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "dashboard query failed"})
			return
		}

		db.Raw(
			`SELECT COALESCE(SUM(total), 0) FROM orders
			 WHERE date_trunc('month', created_at) = date_trunc('month', CURRENT_DATE)
			   AND status <> ?`, cancelled).Scan(&s.RevenueMonth)

		db.Model(&models.User{}).Count(&s.TotalUsers)
		db.Raw(
			`SELECT COUNT(DISTINCT user_id) FROM orders
			 WHERE created_at >= NOW() - INTERVAL '7 days'`).Scan(&s.ActiveUsers)

		// Monthly revenue series for the current year, one slot per month.
		type monthRow struct {
			Month int
			Total float64
		}
		var rows []monthRow
		db.Raw(
			`SELECT EXTRACT(MONTH FROM created_at)::int AS month, SUM(total)::float AS total
			 FROM orders
			 WHERE date_trunc('year', created_at) = date_trunc('year', CURRENT_DATE)
			   AND status <> ?
			 GROUP BY month ORDER BY month`, cancelled).Scan(&rows)
		s.MonthlySales = make([]float64, 12)
		for _, r := range rows {
			if r.Month >= 1 && r.Month <= 12 {
				s.MonthlySales[r.Month-1] = r.Total
			}
		}

		db.Raw(`SELECT COUNT(DISTINCT user_id) FROM orders`).Scan(&s.Buyers)
		s.NonBuyers = s.TotalUsers - s.Buyers
		db.Raw(
			`SELECT COUNT(*) FROM users
			 WHERE created_at >= NOW() - INTERVAL '7 days'`).Scan(&s.NewUsersWeek)

		db.Raw(
			`SELECT COALESCE(AVG(total), 0) FROM orders WHERE status <> ?`, cancelled).
			Scan(&s.AverageTicket)
		if s.TotalUsers > 0 {
			s.ConversionRate = s.Buyers * 100 / s.TotalUsers
		}

		db.Raw(
			`(SELECT 'order' AS kind, id, created_at AS date,
			         'New order #' || id || ' for ' || total AS title
			  FROM orders)
			 UNION
			 (SELECT 'user' AS kind, id, created_at AS date,
			         'New user: ' || first_name || ' ' || last_name AS title
			  FROM users)
			 ORDER BY date DESC LIMIT 6`).Scan(&s.Timeline)

		db.Raw(
			`SELECT p.name, p.price, p.stock,
			        COALESCE(c.name, '') AS category,
			        COUNT(oi.id)::int AS sales
			 FROM products p
			 LEFT JOIN order_items oi ON oi.product_id = p.id
			 LEFT JOIN categories c ON c.id = p.category_id
			 GROUP BY p.id, c.name
			 ORDER BY sales DESC, p.stock ASC
			 LIMIT 5`).Scan(&s.TopProducts)

		c.JSON(http.StatusOK, s)
	}
}
