package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Salon-BookingService/pkg/psqlbuilder"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий недельных расписаний мастеров
// Расписание хранится как 7 строк на мастера, по одной на день недели (ISO 1-7)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByEmployeeID получает недельное расписание мастера
// Отсутствие строк - валидное состояние (ErrScheduleNotFound), вызывающая
// сторона подставляет расписание по умолчанию
func (r *Repository) GetByEmployeeID(ctx context.Context, employeeID int64) (*domain.WeeklySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"day_of_week",
		"is_working",
		"start_time",
		"end_time",
		"break_start",
		"break_end",
	).
		From("employee_schedules").
		Where(squirrel.Eq{"employee_id": employeeID}).
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmployeeID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmployeeID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedule := &domain.WeeklySchedule{EmployeeID: employeeID}
	count := 0

	for rows.Next() {
		var day domain.DaySchedule
		var startTime, endTime types.TimeString
		var breakStart, breakEnd sql.NullString

		if err := rows.Scan(&day.DayOfWeek, &day.IsWorking, &startTime, &endTime, &breakStart, &breakEnd); err != nil {
			return nil, fmt.Errorf("%w: GetByEmployeeID - scan row: %v", ErrScanRow, err)
		}

		day.StartTime = startTime
		day.EndTime = endTime
		day.BreakStart = toTimeStringPtr(breakStart)
		day.BreakEnd = toTimeStringPtr(breakEnd)

		if day.DayOfWeek < domain.Monday || day.DayOfWeek > domain.Sunday {
			return nil, fmt.Errorf("%w: unexpected day_of_week %d", ErrScanRow, day.DayOfWeek)
		}
		schedule.Days[day.DayOfWeek-1] = day
		count++
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByEmployeeID - rows error: %v", ErrScanRow, err)
	}

	if count == 0 {
		return nil, ErrScheduleNotFound
	}
	if count != 7 {
		return nil, ErrIncompleteSchedule
	}

	return schedule, nil
}

// Replace полностью заменяет недельное расписание мастера
// Админ-экран редактирует расписание целиком, поэтому обновление выполняется
// как delete + insert; вызывается внутри транзакции
func (r *Repository) Replace(ctx context.Context, schedule *domain.WeeklySchedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("employee_schedules").
		Where(squirrel.Eq{"employee_id": schedule.EmployeeID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Replace - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: Replace - execute delete: %v", ErrExecQuery, err)
	}

	insertBuilder := psqlbuilder.Insert("employee_schedules").
		Columns(
			"employee_id",
			"day_of_week",
			"is_working",
			"start_time",
			"end_time",
			"break_start",
			"break_end",
		)

	for _, day := range schedule.Days {
		insertBuilder = insertBuilder.Values(
			schedule.EmployeeID,
			day.DayOfWeek,
			day.IsWorking,
			day.StartTime,
			day.EndTime,
			day.BreakStart,
			day.BreakEnd,
		)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Replace - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: Replace - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// toTimeStringPtr конвертирует nullable колонку TIME в *types.TimeString
// Время из Postgres приходит как "HH:MM:SS", секунды обрезаются
func toTimeStringPtr(v sql.NullString) *types.TimeString {
	if !v.Valid {
		return nil
	}
	s := v.String
	if len(s) > 5 {
		s = s[:5]
	}
	ts := types.TimeString(s)
	return &ts
}
