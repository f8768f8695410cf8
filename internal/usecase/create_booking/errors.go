package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrDayClosed возвращается, когда салон закрыт в указанную дату
	ErrDayClosed = errors.New("salon is closed on this date")

	// ErrSlotNotInSchedule возвращается, когда запрошенное время не входит
	// в расписание слотов на этот день
	ErrSlotNotInSchedule = errors.New("time slot is not in the schedule for this date")

	// ErrSlotAlreadyBooked возвращается, когда слот уже занят другим бронированием
	ErrSlotAlreadyBooked = errors.New("time slot is already booked")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
