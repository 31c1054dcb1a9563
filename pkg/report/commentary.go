package report

// Observations printed after the chart they discuss.
var (
	barObservations = []string{
		"• No, the two bar charts do not look similar. The life expectancy is roughly the same for all countries, except for Zimbabwe.",
	}

	violinObservations = []string{
		"• For distribution, Zimbabwe has a much larger distribution than the other countries. Similarly, the life expectancy of Zimbabwe has changed the most as there is a greater range of life expectancy to make up the average around 46 years.",
	}

	yearBarObservations = []string{
		"• The life expectancy in Zimbabwe changes the most from roughly 45 in year 2000, to over 65 in year 2015.",
		"• The biggest changes in GDP data occur between 2004-2009. The biggest changes in life expectancy seem to occur roughly around 2008-2010.",
		"• The country with the least change in GDP has been Zimbabwe followed by Chile.",
		"• While all the countries have seen an increase in life expectancy over the 15 year timeline, Zimbabwe has seen the greatest growth in the dataset. Excluding Zimbabwe, all the countries are roughly the same life expectancy, ranging from 70 to 82 years.",
		"• When analyzing the two bar charts, there appears to be no significant relationship between GDP and life expectancy. Countries that have disproportionately large GDPs do not have an average life expectancy disproportionately longer than other countries.",
		"• Starting with the country Zimbabwe, their GDP is tiny compared to the other world countries. With low GDP, citizens may not have proper access to clean water, sanitary living conditions, modern medicine, and transportation like first world countries. As more countries banded together to help third world countries, particularly in the years 2004-2009, the life expectancy may have come up with it. Next, looking at countries like Chile and Mexico, while their GDPs are low, they have had relatively stable political environments and avoided civil/global wars that often cause turmoil on living conditions and life expectancy. The remaining countries: China, Germany, USA, all have relatively strong GDPs and have seen relatively stable, high average life expectancies.",
	}

	scatterObservations = []string{
		"• China has the biggest GDP growth over the dataset years 2000-2015.",
		"• Zimbabwe has the biggest increase in LEABY over the years.",
		"• No. This is not surprising. The massive increase in the middle class has created a massive increase in the GDP of China. The lack of increase in GDP in Zimbabwe, but significant increases in LEABY I believe can be hypothesized to be a result of globalization and increasing support from first world countries helping third world countries.",
		"• The scatter plots are not the easiest to read. It is hard to analyze big picture all at once with scatter plots.",
	}

	lifeLineObservations = []string{
		"• Zimbabwe and China have seen the largest increases in Life Expectancy, respectively.",
		"• The years between 2004-2009 saw the greatest changes in life expectancy for Zimbabwe. The other countries increases were not as substantial.",
		"• The United States saw the least change in life expectancy over time. This can be explained by the country being a developed first world country that has already seen massive increases in life expectancy earlier on in its history. There has been no revolutionary changes in modern medicine or GDP/capita.",
		"• The massive increase in life expectancy for Zimbabwe, and arguably some for Chile, could be explained by the globalization wave that happened in the early 2000s that resulted in support for third world countries and increased supplies/access to modern medicine.",
	}

	gdpLineObservations = []string{
		"• The countries with the highest GDP is the United States of America, followed by China. The countries with the lowest GDP is Zimbabwe, followed by Chile.",
		"• The countries with the highest life expectancy is Chile followed by Germany and the USA. The country with the lowest life expectancy is Zimbabwe.",
		"• In the year 2000, China was just coming out of a slowed economy due to the Asian Financial Crisis. They saw decreased foreign direct investment and a sharp drop in the growth of its exports. However, the GDP was starting to gain momentum after, with the GDP growing at an official 8.0% y/y in 2000. China had huge currency reserves and a sizable inflow of long-term investments in the country, thus the country was largely less affected than other regional countries.",
		"• In order to get their country back on track, they went through impressive economic development changes from reforming the state sector to modernizing the banking system. The following years the Chinese government implemented many amendments and investment proposals that continued this momentum. A big turning point occurred in 2005, when the country approved the 11th Five-Year Economic Program from 2006-2010 that aimed at building more balanced wealth distribution and improved education, medical care, and social security. The years following, China saw massive growth in the middle class and the standard of living for its citizens. The World Bank confirmed in 2009 that China grew to be the world's third largest economy by GDP.",
	}
)
