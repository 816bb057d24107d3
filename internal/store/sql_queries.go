package store

const (
	createUser = `INSERT INTO users (login, password_hash, name, is_active, is_superuser)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING user_id, login, password_hash, name, is_active, is_superuser, created_at;`

	findUserByLogin = `SELECT user_id, login, password_hash, name, is_active, is_superuser, created_at
    FROM users
    WHERE login = $1;`

	findUserByID = `SELECT user_id, login, password_hash, name, is_active, is_superuser, created_at
    FROM users
    WHERE user_id = $1;`

	addUserMessage = `INSERT INTO user_messages (user_id, message)
    VALUES ($1, $2)
    RETURNING message_id, message, created_at;`

	getAndDeleteUserMessages = `DELETE FROM user_messages
    WHERE user_id = $1
    RETURNING message_id, message, created_at;`
)
