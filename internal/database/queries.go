package database

// Restaurant and table queries
const (
	GetRestaurantSQL = `
		SELECT id, name, description, address, phone, is_open, open_time, close_time
		FROM restaurants WHERE id = $1`

	GetTablesSQL = `
		SELECT id, number, restaurant_id, qr_code, is_active
		FROM tables
		WHERE restaurant_id = $1
		ORDER BY number ASC`

	GetTableByQRCodeSQL = `
		SELECT id, number, restaurant_id, qr_code, is_active
		FROM tables WHERE qr_code = $1`
)

// Menu queries
const (
	GetCategoriesSQL = `
		SELECT id, name, description, sort_order, restaurant_id
		FROM categories
		WHERE restaurant_id = $1
		ORDER BY sort_order ASC`

	GetMenuItemsSQL = `
		SELECT id, name, description, price, image, category_id, restaurant_id, is_available, customizations
		FROM menu_items
		WHERE restaurant_id = $1
		ORDER BY id ASC`

	GetMenuItemSQL = `
		SELECT id, name, description, price, image, category_id, restaurant_id, is_available, customizations
		FROM menu_items WHERE id = $1`

	InsertMenuItemSQL = `
		INSERT INTO menu_items (id, name, description, price, image, category_id, restaurant_id, is_available, customizations)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	UpdateMenuItemSQL = `
		UPDATE menu_items SET
			name = COALESCE($2, name),
			description = COALESCE($3, description),
			price = COALESCE($4, price),
			is_available = COALESCE($5, is_available)
		WHERE id = $1
		RETURNING id, name, description, price, image, category_id, restaurant_id, is_available, customizations`

	DeleteMenuItemSQL = `
		DELETE FROM menu_items WHERE id = $1`
)

// Order queries
const (
	InsertOrderSQL = `
		INSERT INTO orders (id, restaurant_id, table_number, items, total_amount, status, payment_status, customer_notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	GetOrderSQL = `
		SELECT id, restaurant_id, table_number, items, total_amount, status, payment_status, payment_method, customer_notes, created_at, updated_at
		FROM orders WHERE id = $1`

	GetOrdersSQL = `
		SELECT id, restaurant_id, table_number, items, total_amount, status, payment_status, payment_method, customer_notes, created_at, updated_at
		FROM orders
		WHERE ($1 = '' OR restaurant_id = $1) AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC`

	UpdateOrderSQL = `
		UPDATE orders SET
			status = COALESCE($2, status),
			payment_status = COALESCE($3, payment_status),
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, restaurant_id, table_number, items, total_amount, status, payment_status, payment_method, customer_notes, created_at, updated_at`

	InsertOrderStatusLogSQL = `
		INSERT INTO order_status_log (order_id, status, changed_by, notes)
		VALUES ($1, $2, $3, $4)`

	GetOrderStatusHistorySQL = `
		SELECT status, changed_by, changed_at, COALESCE(notes, '')
		FROM order_status_log
		WHERE order_id = $1
		ORDER BY changed_at ASC`
)
