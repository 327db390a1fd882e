// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/snapreceipt/receiptd/db/ent/schema"
	"github.com/snapreceipt/receiptd/gen/ent/extractjob"
	"github.com/snapreceipt/receiptd/gen/ent/receipt"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	extractjobFields := schema.ExtractJob{}.Fields()
	_ = extractjobFields
	// extractjobDescRawText is the schema descriptor for raw_text field.
	extractjobDescRawText := extractjobFields[2].Descriptor()
	// extractjob.RawTextValidator is a validator for the "raw_text" field. It is called by the builders before save.
	extractjob.RawTextValidator = extractjobDescRawText.Validators[0].(func(string) error)
	// extractjobDescStatus is the schema descriptor for status field.
	extractjobDescStatus := extractjobFields[3].Descriptor()
	// extractjob.DefaultStatus holds the default value on creation for the status field.
	extractjob.DefaultStatus = extractjobDescStatus.Default.(string)
	// extractjobDescSubmittedAt is the schema descriptor for submitted_at field.
	extractjobDescSubmittedAt := extractjobFields[5].Descriptor()
	// extractjob.DefaultSubmittedAt holds the default value on creation for the submitted_at field.
	extractjob.DefaultSubmittedAt = extractjobDescSubmittedAt.Default.(func() time.Time)
	// extractjobDescID is the schema descriptor for id field.
	extractjobDescID := extractjobFields[0].Descriptor()
	// extractjob.DefaultID holds the default value on creation for the id field.
	extractjob.DefaultID = extractjobDescID.Default.(func() uuid.UUID)
	receiptFields := schema.Receipt{}.Fields()
	_ = receiptFields
	// receiptDescIsValid is the schema descriptor for is_valid field.
	receiptDescIsValid := receiptFields[4].Descriptor()
	// receipt.DefaultIsValid holds the default value on creation for the is_valid field.
	receipt.DefaultIsValid = receiptDescIsValid.Default.(bool)
	// receiptDescRawText is the schema descriptor for raw_text field.
	receiptDescRawText := receiptFields[5].Descriptor()
	// receipt.RawTextValidator is a validator for the "raw_text" field. It is called by the builders before save.
	receipt.RawTextValidator = receiptDescRawText.Validators[0].(func(string) error)
	// receiptDescCreatedAt is the schema descriptor for created_at field.
	receiptDescCreatedAt := receiptFields[6].Descriptor()
	// receipt.DefaultCreatedAt holds the default value on creation for the created_at field.
	receipt.DefaultCreatedAt = receiptDescCreatedAt.Default.(func() time.Time)
	// receiptDescID is the schema descriptor for id field.
	receiptDescID := receiptFields[0].Descriptor()
	// receipt.DefaultID holds the default value on creation for the id field.
	receipt.DefaultID = receiptDescID.Default.(func() uuid.UUID)
}
