// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ndthanh/studycoach/ent/predictionrecord"
)

// PredictionRecord is the model entity for the PredictionRecord schema.
type PredictionRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// PredictionID holds the value of the "prediction_id" field.
	PredictionID string `json:"prediction_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// SkillID holds the value of the "skill_id" field.
	SkillID string `json:"skill_id,omitempty"`
	// PriorDifficulty holds the value of the "prior_difficulty" field.
	PriorDifficulty int `json:"prior_difficulty,omitempty"`
	// RecentErrors holds the value of the "recent_errors" field.
	RecentErrors int `json:"recent_errors,omitempty"`
	// ResponseTimeRatio holds the value of the "response_time_ratio" field.
	ResponseTimeRatio float64 `json:"response_time_ratio,omitempty"`
	// LearningVelocity holds the value of the "learning_velocity" field.
	LearningVelocity float64 `json:"learning_velocity,omitempty"`
	// SampleSize holds the value of the "sample_size" field.
	SampleSize int `json:"sample_size,omitempty"`
	// Probability holds the value of the "probability" field.
	Probability float64 `json:"probability,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// scaffold | normal
	Action string `json:"action,omitempty"`
	// Annotated after the fact; null until observed
	ActualStruggle *bool `json:"actual_struggle,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PredictionRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case predictionrecord.FieldActualStruggle:
			values[i] = new(sql.NullBool)
		case predictionrecord.FieldResponseTimeRatio, predictionrecord.FieldLearningVelocity, predictionrecord.FieldProbability, predictionrecord.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case predictionrecord.FieldID, predictionrecord.FieldSequence, predictionrecord.FieldPriorDifficulty, predictionrecord.FieldRecentErrors, predictionrecord.FieldSampleSize:
			values[i] = new(sql.NullInt64)
		case predictionrecord.FieldPredictionID, predictionrecord.FieldUserID, predictionrecord.FieldSkillID, predictionrecord.FieldAction:
			values[i] = new(sql.NullString)
		case predictionrecord.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PredictionRecord fields.
func (_m *PredictionRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case predictionrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case predictionrecord.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case predictionrecord.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case predictionrecord.FieldPredictionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prediction_id", values[i])
			} else if value.Valid {
				_m.PredictionID = value.String
			}
		case predictionrecord.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case predictionrecord.FieldSkillID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_id", values[i])
			} else if value.Valid {
				_m.SkillID = value.String
			}
		case predictionrecord.FieldPriorDifficulty:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field prior_difficulty", values[i])
			} else if value.Valid {
				_m.PriorDifficulty = int(value.Int64)
			}
		case predictionrecord.FieldRecentErrors:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field recent_errors", values[i])
			} else if value.Valid {
				_m.RecentErrors = int(value.Int64)
			}
		case predictionrecord.FieldResponseTimeRatio:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field response_time_ratio", values[i])
			} else if value.Valid {
				_m.ResponseTimeRatio = value.Float64
			}
		case predictionrecord.FieldLearningVelocity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field learning_velocity", values[i])
			} else if value.Valid {
				_m.LearningVelocity = value.Float64
			}
		case predictionrecord.FieldSampleSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sample_size", values[i])
			} else if value.Valid {
				_m.SampleSize = int(value.Int64)
			}
		case predictionrecord.FieldProbability:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field probability", values[i])
			} else if value.Valid {
				_m.Probability = value.Float64
			}
		case predictionrecord.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case predictionrecord.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case predictionrecord.FieldActualStruggle:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field actual_struggle", values[i])
			} else if value.Valid {
				_m.ActualStruggle = new(bool)
				*_m.ActualStruggle = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PredictionRecord.
// This includes values selected through modifiers, order, etc.
func (_m *PredictionRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PredictionRecord.
// Note that you need to call PredictionRecord.Unwrap() before calling this method if this PredictionRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PredictionRecord) Update() *PredictionRecordUpdateOne {
	return NewPredictionRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PredictionRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PredictionRecord) Unwrap() *PredictionRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PredictionRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PredictionRecord) String() string {
	var builder strings.Builder
	builder.WriteString("PredictionRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("prediction_id=")
	builder.WriteString(_m.PredictionID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("skill_id=")
	builder.WriteString(_m.SkillID)
	builder.WriteString(", ")
	builder.WriteString("prior_difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.PriorDifficulty))
	builder.WriteString(", ")
	builder.WriteString("recent_errors=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecentErrors))
	builder.WriteString(", ")
	builder.WriteString("response_time_ratio=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResponseTimeRatio))
	builder.WriteString(", ")
	builder.WriteString("learning_velocity=")
	builder.WriteString(fmt.Sprintf("%v", _m.LearningVelocity))
	builder.WriteString(", ")
	builder.WriteString("sample_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.SampleSize))
	builder.WriteString(", ")
	builder.WriteString("probability=")
	builder.WriteString(fmt.Sprintf("%v", _m.Probability))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	if v := _m.ActualStruggle; v != nil {
		builder.WriteString("actual_struggle=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// PredictionRecords is a parsable slice of PredictionRecord.
type PredictionRecords []*PredictionRecord
