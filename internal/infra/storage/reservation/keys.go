package reservation

import "fmt"

// ReservationKey ключ хэша с записью бронирования
func ReservationKey(id int64) string {
	return fmt.Sprintf("reservation:%d", id)
}

// StudentIndexKey ключ множества идентификаторов бронирований студента
// Чистый индекс для выборки истории, ведётся в той же транзакции,
// что и запись бронирования
func StudentIndexKey(studentID int64) string {
	return fmt.Sprintf("studentReservations:%d", studentID)
}

// counterKey монотонный счётчик для выделения идентификаторов
const counterKey = "counter:reservation"
