package email

// SendAppointmentConfirmation sends a booking confirmation to a customer.
//
// The formatted strings (date, price) are prepared by the caller so the
// template stays free of formatting logic.
func (c *Client) SendAppointmentConfirmation(to, customerName, serviceName, employeeName, appointmentDate, price string) error {
	data := map[string]string{
		"CustomerName":    customerName,
		"ServiceName":     serviceName,
		"EmployeeName":    employeeName,
		"AppointmentDate": appointmentDate,
		"Price":           price,
	}

	return c.SendEmail(
		to,
		"Your appointment is booked!",
		TemplateAppointmentConfirmation,
		data,
	)
}
